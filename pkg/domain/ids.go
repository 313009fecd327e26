// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "riskdesk/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing an AuditID where a CompanyID is expected.
type (
	UserID          uuid.UUID
	CompanyID       uuid.UUID
	FrameworkID     uuid.UUID
	AuditID         uuid.UUID
	ThemeID         uuid.UUID
	ScenarioID      uuid.UUID
	TemplateID      uuid.UUID
	ScaleTemplateID uuid.UUID
	ScaleTypeID     uuid.UUID
	CompanyScaleID  uuid.UUID
	ScaleLevelID    uuid.UUID
)

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseUserID(s string) (UserID, error) {
	id, err := parseUUID(s, "user ID")
	return UserID(id), err
}

func ParseCompanyID(s string) (CompanyID, error) {
	id, err := parseUUID(s, "company ID")
	return CompanyID(id), err
}

func ParseFrameworkID(s string) (FrameworkID, error) {
	id, err := parseUUID(s, "framework ID")
	return FrameworkID(id), err
}

func ParseAuditID(s string) (AuditID, error) {
	id, err := parseUUID(s, "audit ID")
	return AuditID(id), err
}

func ParseThemeID(s string) (ThemeID, error) {
	id, err := parseUUID(s, "theme ID")
	return ThemeID(id), err
}

func ParseScenarioID(s string) (ScenarioID, error) {
	id, err := parseUUID(s, "risk scenario ID")
	return ScenarioID(id), err
}

func ParseTemplateID(s string) (TemplateID, error) {
	id, err := parseUUID(s, "template ID")
	return TemplateID(id), err
}

// String methods - for logging and JSON DTOs.

func (id UserID) String() string          { return uuid.UUID(id).String() }
func (id CompanyID) String() string       { return uuid.UUID(id).String() }
func (id FrameworkID) String() string     { return uuid.UUID(id).String() }
func (id AuditID) String() string         { return uuid.UUID(id).String() }
func (id ThemeID) String() string         { return uuid.UUID(id).String() }
func (id ScenarioID) String() string      { return uuid.UUID(id).String() }
func (id TemplateID) String() string      { return uuid.UUID(id).String() }
func (id ScaleTemplateID) String() string { return uuid.UUID(id).String() }
func (id ScaleTypeID) String() string     { return uuid.UUID(id).String() }
func (id CompanyScaleID) String() string  { return uuid.UUID(id).String() }
func (id ScaleLevelID) String() string    { return uuid.UUID(id).String() }

// IsNil checks - used for service-layer validation.

func (id UserID) IsNil() bool          { return uuid.UUID(id) == uuid.Nil }
func (id CompanyID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id FrameworkID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id AuditID) IsNil() bool         { return uuid.UUID(id) == uuid.Nil }
func (id ThemeID) IsNil() bool         { return uuid.UUID(id) == uuid.Nil }
func (id ScenarioID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id TemplateID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id ScaleTemplateID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id ScaleTypeID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id CompanyScaleID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }

// parseUUID is the shared validation logic.
// Nil UUIDs are allowed here; services reject them with IsNil so stores can
// still answer "not found" consistently.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return id, nil
}
