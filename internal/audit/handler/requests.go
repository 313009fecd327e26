package handler

import (
	"strings"
	"time"

	"riskdesk/internal/audit/fieldmap"
	"riskdesk/internal/audit/models"
	"riskdesk/internal/audit/service"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/optional"
	s "riskdesk/pkg/string"
	"riskdesk/pkg/validation"
)

type CreateAuditRequest struct {
	FrameworkID string  `json:"framework_id" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required,notblank,max=200"`
	Status      string  `json:"status" validate:"omitempty,oneof=draft planned in_progress review completed cancelled"`
	StartDate   string  `json:"start_date" validate:"omitempty,date"`
	EndDate     string  `json:"end_date" validate:"omitempty,date"`
	Scope       *string `json:"scope"`

	frameworkID domain.FrameworkID
	startDate   *time.Time
	endDate     *time.Time
}

func (r *CreateAuditRequest) Normalize() {
	if r == nil {
		return
	}
	s.TrimStrings(&r.FrameworkID, &r.Name, &r.Status, &r.StartDate, &r.EndDate)
	s.TrimPtr(r.Scope)
	r.Scope = s.NilIfBlank(r.Scope)
}

func (r *CreateAuditRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	id, err := domain.ParseFrameworkID(r.FrameworkID)
	if err != nil {
		return err
	}
	r.frameworkID = id
	r.startDate = parseOptionalDate(r.StartDate)
	r.endDate = parseOptionalDate(r.EndDate)
	return nil
}

func (r *CreateAuditRequest) toCommand(companyID domain.CompanyID) service.CreateAuditCommand {
	return service.CreateAuditCommand{
		CompanyID:   companyID,
		FrameworkID: r.frameworkID,
		Name:        r.Name,
		Status:      models.Status(r.Status),
		StartDate:   r.startDate,
		EndDate:     r.endDate,
		Scope:       r.Scope,
	}
}

// parseOptionalDate expects a value already checked by the date rule.
func parseOptionalDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	d, err := fieldmap.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &d
}

// UpdateAuditRequest is a JSON merge patch over the audit fields.
type UpdateAuditRequest struct {
	fieldmap.Patch
}

func (r *UpdateAuditRequest) Normalize() {
	if r == nil {
		return
	}
	for _, v := range []*optional.Value[string]{&r.Name, &r.Status, &r.FrameworkID, &r.StartDate, &r.EndDate, &r.Scope} {
		v.V = strings.TrimSpace(v.V)
	}
}

func (r *UpdateAuditRequest) Validate() error {
	if r.Name.Set {
		if r.Name.Null {
			return dErrors.New(dErrors.CodeValidation, "name cannot be null")
		}
		if err := validation.Var("name", r.Name.V, "notblank,max=200"); err != nil {
			return err
		}
	}
	if r.Status.Set && r.Status.Null {
		return dErrors.New(dErrors.CodeValidation, "status cannot be null")
	}
	if v, ok := r.FrameworkID.Get(); ok {
		if err := validation.Var("framework_id", v, "uuid"); err != nil {
			return err
		}
	} else if r.FrameworkID.Set {
		return dErrors.New(dErrors.CodeValidation, "framework_id cannot be null")
	}
	if v, ok := r.StartDate.Get(); ok {
		if err := validation.Var("start_date", v, "date"); err != nil {
			return err
		}
	}
	if v, ok := r.EndDate.Get(); ok {
		if err := validation.Var("end_date", v, "date"); err != nil {
			return err
		}
	}
	return nil
}

type AssignUserItem struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Role   string `json:"role" validate:"required,oneof=lead_auditor auditor auditee observer"`
}

type AssignUsersRequest struct {
	Users []AssignUserItem `json:"users" validate:"required,min=1,dive"`

	assignments []service.Assignment
}

func (r *AssignUsersRequest) Normalize() {
	if r == nil {
		return
	}
	for i := range r.Users {
		s.TrimStrings(&r.Users[i].UserID, &r.Users[i].Role)
	}
}

func (r *AssignUsersRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	r.assignments = make([]service.Assignment, 0, len(r.Users))
	for _, u := range r.Users {
		id, err := domain.ParseUserID(u.UserID)
		if err != nil {
			return err
		}
		r.assignments = append(r.assignments, service.Assignment{UserID: id, Role: models.Role(u.Role)})
	}
	return nil
}

type CreateThemeRequest struct {
	Name          string   `json:"name" validate:"required,notblank,max=200"`
	Description   string   `json:"description"`
	DurationHours *float64 `json:"duration_hours" validate:"omitempty,gt=0,lte=24"`
}

func (r *CreateThemeRequest) Normalize() {
	if r == nil {
		return
	}
	s.TrimStrings(&r.Name, &r.Description)
}

func (r *CreateThemeRequest) Validate() error {
	return validation.Validate(r)
}

// FeasibilityRequest carries the transient plan state: calendar days and themes.
type FeasibilityRequest struct {
	Days     []string `json:"days" validate:"dive,required,date"`
	ThemeIDs []string `json:"theme_ids" validate:"dive,required,uuid"`

	days     []time.Time
	themeIDs []domain.ThemeID
}

func (r *FeasibilityRequest) Normalize() {
	if r == nil {
		return
	}
	for i := range r.Days {
		r.Days[i] = strings.TrimSpace(r.Days[i])
	}
	for i := range r.ThemeIDs {
		r.ThemeIDs[i] = strings.TrimSpace(r.ThemeIDs[i])
	}
}

func (r *FeasibilityRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	r.days = make([]time.Time, 0, len(r.Days))
	for _, raw := range r.Days {
		if d := parseOptionalDate(raw); d != nil {
			r.days = append(r.days, *d)
		}
	}
	r.themeIDs = make([]domain.ThemeID, 0, len(r.ThemeIDs))
	for _, raw := range r.ThemeIDs {
		id, err := domain.ParseThemeID(raw)
		if err != nil {
			return err
		}
		r.themeIDs = append(r.themeIDs, id)
	}
	return nil
}
