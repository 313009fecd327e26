package models

import (
	"time"
	"unicode/utf8"

	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

type Status string

const (
	StatusDraft      Status = "draft"
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var Statuses = []Status{StatusDraft, StatusPlanned, StatusInProgress, StatusReview, StatusCompleted, StatusCancelled}

var statusBadges = map[Status]domain.Badge{
	StatusDraft:      {Label: "Draft", Variant: "gray"},
	StatusPlanned:    {Label: "Planned", Variant: "blue"},
	StatusInProgress: {Label: "In progress", Variant: "yellow"},
	StatusReview:     {Label: "In review", Variant: "purple"},
	StatusCompleted:  {Label: "Completed", Variant: "green"},
	StatusCancelled:  {Label: "Cancelled", Variant: "red"},
}

func (s Status) IsValid() bool {
	_, ok := statusBadges[s]
	return ok
}

// Display is total: values outside the closed set get domain.UnknownBadge.
func (s Status) Display() domain.Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return domain.UnknownBadge
}

type Audit struct {
	ID          domain.AuditID
	CompanyID   domain.CompanyID
	FrameworkID domain.FrameworkID
	Name        string
	Status      Status
	// StartDate and EndDate are calendar dates at midnight UTC.
	StartDate *time.Time
	EndDate   *time.Time
	Scope     *string
	CreatedBy *domain.UserID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Audit) Validate() error {
	if a.CompanyID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "company_id is required")
	}
	if a.FrameworkID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "framework_id is required")
	}
	if a.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if utf8.RuneCountInString(a.Name) > 200 {
		return dErrors.New(dErrors.CodeValidation, "name must be at most 200 characters")
	}
	if !a.Status.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "status is invalid")
	}
	if a.StartDate != nil && a.EndDate != nil && a.StartDate.After(*a.EndDate) {
		return dErrors.New(dErrors.CodeValidation, "start_date must be on or before end_date")
	}
	return nil
}

// Role is the part a user plays in one audit.
type Role string

const (
	RoleLeadAuditor Role = "lead_auditor"
	RoleAuditor     Role = "auditor"
	RoleAuditee     Role = "auditee"
	RoleObserver    Role = "observer"
)

var Roles = []Role{RoleLeadAuditor, RoleAuditor, RoleAuditee, RoleObserver}

func (r Role) IsValid() bool {
	switch r {
	case RoleLeadAuditor, RoleAuditor, RoleAuditee, RoleObserver:
		return true
	}
	return false
}

type AuditUser struct {
	AuditID   domain.AuditID
	UserID    domain.UserID
	Role      Role
	CreatedAt time.Time
}
