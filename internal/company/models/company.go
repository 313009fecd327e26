package models

import (
	"time"
	"unicode/utf8"

	"github.com/gosimple/slug"

	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

const (
	MaxNameLength   = 200
	MinCreationYear = 1000
	MaxCreationYear = 9999
)

// Company is an audited client. Companies are never hard-deleted.
// Optional text fields are empty when unknown.
type Company struct {
	ID            domain.CompanyID
	Name          string
	Slug          string
	Description   string
	Activity      string
	CreationYear  *int
	ParentCompany string
	MarketScope   string
	LastAuditDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewCompany(id domain.CompanyID, name string, now time.Time) (*Company, error) {
	c := &Company{
		ID:        id,
		Name:      name,
		Slug:      Slugify(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Rename changes the name and the derived slug together.
func (c *Company) Rename(name string) {
	c.Name = name
	c.Slug = Slugify(name)
}

func (c *Company) Validate() error {
	if c.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if utf8.RuneCountInString(c.Name) > MaxNameLength {
		return dErrors.New(dErrors.CodeValidation, "name must be 200 characters or less")
	}
	if c.CreationYear != nil && (*c.CreationYear < MinCreationYear || *c.CreationYear > MaxCreationYear) {
		return dErrors.New(dErrors.CodeValidation, "creation_year must be a four digit year")
	}
	return nil
}

// Slugify derives the URL slug shown in company links.
func Slugify(name string) string {
	return slug.Make(name)
}
