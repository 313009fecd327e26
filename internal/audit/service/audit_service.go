package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"riskdesk/internal/audit/fieldmap"
	auditmetrics "riskdesk/internal/audit/metrics"
	"riskdesk/internal/audit/models"
	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/requestcontext"
)

type CreateAuditCommand struct {
	CompanyID   domain.CompanyID
	FrameworkID domain.FrameworkID
	Name        string
	Status      models.Status
	StartDate   *time.Time
	EndDate     *time.Time
	Scope       *string
	CreatedBy   *domain.UserID
}

// Assignment gives a user a role on an audit.
type Assignment struct {
	UserID domain.UserID
	Role   models.Role
}

// AuditService manages audits and their participants.
type AuditService struct {
	audits     AuditStore
	frameworks FrameworkStore
	companies  CompanyChecker
	tx         StoreTx
	logger     *slog.Logger
	metrics    *auditmetrics.Metrics
}

func NewAuditService(audits AuditStore, frameworks FrameworkStore, opts ...Option) *AuditService {
	cfg := newConfig(opts)
	return &AuditService{
		audits:     audits,
		frameworks: frameworks,
		companies:  cfg.companies,
		tx:         cfg.tx,
		logger:     cfg.logger,
		metrics:    cfg.metrics,
	}
}

// Create stores a new audit. Status defaults to draft.
func (s *AuditService) Create(ctx context.Context, cmd CreateAuditCommand) (*models.Audit, error) {
	if err := ensureCompany(ctx, s.companies, cmd.CompanyID); err != nil {
		return nil, err
	}
	if cmd.FrameworkID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "framework_id is required")
	}
	if _, err := s.frameworks.FindByID(ctx, cmd.FrameworkID); err != nil {
		return nil, wrapFrameworkErr(err, "failed to look up framework")
	}

	now := requestcontext.Now(ctx)
	audit := &models.Audit{
		ID:          domain.AuditID(uuid.New()),
		CompanyID:   cmd.CompanyID,
		FrameworkID: cmd.FrameworkID,
		Name:        strings.TrimSpace(cmd.Name),
		Status:      cmd.Status,
		StartDate:   cmd.StartDate,
		EndDate:     cmd.EndDate,
		Scope:       cmd.Scope,
		CreatedBy:   cmd.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if audit.Status == "" {
		audit.Status = models.StatusDraft
	}
	if err := audit.Validate(); err != nil {
		return nil, err
	}

	if err := s.audits.Create(ctx, audit); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create audit")
	}
	if s.metrics != nil {
		s.metrics.IncrementAuditsCreated()
	}
	s.logger.InfoContext(ctx, "audit created",
		"audit_id", audit.ID,
		"company_id", audit.CompanyID,
		"framework_id", audit.FrameworkID,
	)
	return audit, nil
}

func (s *AuditService) Get(ctx context.Context, id domain.AuditID) (*models.Audit, error) {
	if err := requireAuditID(id); err != nil {
		return nil, err
	}
	audit, err := s.audits.FindByID(ctx, id)
	if err != nil {
		return nil, wrapAuditErr(err, "failed to load audit")
	}
	return audit, nil
}

func (s *AuditService) ListByCompany(ctx context.Context, companyID domain.CompanyID) ([]*models.Audit, error) {
	if err := requireCompanyID(companyID); err != nil {
		return nil, err
	}
	list, err := s.audits.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audits")
	}
	return list, nil
}

// Update applies a partial update through the field mapper. The merged audit,
// dates included, is validated before anything is written.
func (s *AuditService) Update(ctx context.Context, id domain.AuditID, patch fieldmap.Patch) (*models.Audit, error) {
	if err := requireAuditID(id); err != nil {
		return nil, err
	}

	var updated *models.Audit
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.audits.FindByID(txCtx, id)
		if err != nil {
			return wrapAuditErr(err, "failed to load audit")
		}

		changes := fieldmap.ToUpdate(patch)
		if len(changes) == 0 {
			updated = current
			return nil
		}
		merged, err := fieldmap.Apply(current, patch)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeValidation, err.Error())
		}
		if patch.FrameworkID.Set && merged.FrameworkID != current.FrameworkID {
			if _, err := s.frameworks.FindByID(txCtx, merged.FrameworkID); err != nil {
				return wrapFrameworkErr(err, "failed to look up framework")
			}
		}
		if patch.FrameworkID.Set {
			changes["framework_id"] = uuid.UUID(merged.FrameworkID)
		}
		if err := merged.Validate(); err != nil {
			return err
		}

		merged.UpdatedAt = requestcontext.Now(txCtx)
		if err := s.audits.Update(txCtx, merged, changes); err != nil {
			return wrapAuditErr(err, "failed to update audit")
		}
		updated = merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an audit and its assignments permanently.
func (s *AuditService) Delete(ctx context.Context, id domain.AuditID) error {
	if err := requireAuditID(id); err != nil {
		return err
	}
	if err := s.audits.Delete(ctx, id); err != nil {
		return wrapAuditErr(err, "failed to delete audit")
	}
	if s.metrics != nil {
		s.metrics.IncrementAuditsDeleted()
	}
	s.logger.InfoContext(ctx, "audit deleted", "audit_id", id)
	return nil
}

// AssignUsers adds participants or changes their role. When a user appears
// more than once the last role wins.
func (s *AuditService) AssignUsers(ctx context.Context, auditID domain.AuditID, assignments []Assignment) ([]*models.AuditUser, error) {
	if err := requireAuditID(auditID); err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "at least one user is required")
	}

	now := requestcontext.Now(ctx)
	byUser := make(map[domain.UserID]int, len(assignments))
	rows := make([]*models.AuditUser, 0, len(assignments))
	for _, a := range assignments {
		if a.UserID.IsNil() {
			return nil, dErrors.New(dErrors.CodeValidation, "user_id is required")
		}
		if !a.Role.IsValid() {
			return nil, dErrors.New(dErrors.CodeValidation, "role is invalid")
		}
		row := &models.AuditUser{AuditID: auditID, UserID: a.UserID, Role: a.Role, CreatedAt: now}
		if i, ok := byUser[a.UserID]; ok {
			rows[i] = row
			continue
		}
		byUser[a.UserID] = len(rows)
		rows = append(rows, row)
	}

	if err := s.audits.AssignUsers(ctx, auditID, rows); err != nil {
		return nil, wrapAuditErr(err, "failed to assign audit users")
	}
	if s.metrics != nil {
		s.metrics.AddUsersAssigned(len(rows))
	}
	return s.ListUsers(ctx, auditID)
}

func (s *AuditService) ListUsers(ctx context.Context, auditID domain.AuditID) ([]*models.AuditUser, error) {
	if err := requireAuditID(auditID); err != nil {
		return nil, err
	}
	users, err := s.audits.ListUsers(ctx, auditID)
	if err != nil {
		return nil, wrapAuditErr(err, "failed to list audit users")
	}
	return users, nil
}
