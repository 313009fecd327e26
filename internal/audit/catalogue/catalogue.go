// Package catalogue holds the built-in audit themes and frameworks. Frameworks
// mirror migrations/00002_catalogue.sql so the database-less mode serves the
// same ids.
package catalogue

import (
	"github.com/google/uuid"

	"riskdesk/internal/audit/models"
	"riskdesk/pkg/domain"
)

type defaultTheme struct {
	name        string
	description string
	hours       float64
}

var defaultThemes = []defaultTheme{
	{"Governance and policies", "Security organisation, roles and the policy framework", 2},
	{"Access management", "Identity lifecycle, privileged accounts and authentication", 3},
	{"Network and infrastructure security", "Segmentation, hardening and vulnerability management", 3},
	{"Business continuity", "Backups, disaster recovery and crisis management", 2},
	{"Data protection", "Classification, encryption and personal data handling", 2},
}

// DefaultThemes returns fresh copies of the five themes seeded into an empty catalogue.
func DefaultThemes() []*models.Theme {
	out := make([]*models.Theme, 0, len(defaultThemes))
	for _, t := range defaultThemes {
		hours := t.hours
		out = append(out, &models.Theme{
			ID:            domain.ThemeID(uuid.New()),
			Name:          t.name,
			Description:   t.description,
			DurationHours: &hours,
		})
	}
	return out
}

func Frameworks() []*models.Framework {
	return []*models.Framework{
		{ID: frameworkID("0b7f5c10-0000-4000-8000-000000000001"), Name: "ISO/IEC 27001", Version: "2022"},
		{ID: frameworkID("0b7f5c10-0000-4000-8000-000000000002"), Name: "NIST Cybersecurity Framework", Version: "2.0"},
		{ID: frameworkID("0b7f5c10-0000-4000-8000-000000000003"), Name: "SOC 2", Version: "2017"},
		{ID: frameworkID("0b7f5c10-0000-4000-8000-000000000004"), Name: "GDPR", Version: "2016/679"},
	}
}

func frameworkID(s string) domain.FrameworkID {
	return domain.FrameworkID(uuid.MustParse(s))
}
