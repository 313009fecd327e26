package models

import (
	"time"

	"riskdesk/pkg/domain"
)

type ScaleCategory string

const (
	CategoryLikelihood ScaleCategory = "likelihood"
	CategoryImpact     ScaleCategory = "impact"
)

// ScaleTemplate is a global scale definition owning four ordered level templates.
type ScaleTemplate struct {
	ID          domain.ScaleTemplateID
	Name        string
	Category    ScaleCategory
	Description string
	Levels      []LevelTemplate
}

type LevelTemplate struct {
	LevelValue  int
	Name        string
	Description string
	Color       string
}

// ScaleType is shared by every company that uses a scale of this name and category.
type ScaleType struct {
	ID          domain.ScaleTypeID
	Name        string
	Category    ScaleCategory
	Description string
}

type CompanyScale struct {
	ID          domain.CompanyScaleID
	CompanyID   domain.CompanyID
	ScaleTypeID domain.ScaleTypeID
	IsActive    bool
	CreatedAt   time.Time
	// Type is populated on reads.
	Type *ScaleType
}

type ScaleLevel struct {
	ID             domain.ScaleLevelID
	CompanyScaleID domain.CompanyScaleID
	LevelValue     int
	Name           string
	Description    string
	Color          string
}
