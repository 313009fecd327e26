package models

import (
	"time"

	"riskdesk/pkg/domain"
)

// Theme is a shared catalogue entry used to scope audit interviews.
// The UI sometimes calls it a topic.
type Theme struct {
	ID            domain.ThemeID
	Name          string
	Description   string
	DurationHours *float64
	CreatedAt     time.Time
}

// Framework is a read-only catalogue entry, e.g. ISO/IEC 27001 2022.
type Framework struct {
	ID      domain.FrameworkID
	Name    string
	Version string
}
