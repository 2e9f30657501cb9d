package delegation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/log"
	"github.com/goto/approvals/pkg/slices"
)

const (
	AuditKeyAddBackupApprover    = "delegation.addBackupApprover"
	AuditKeyRemoveBackupApprover = "delegation.removeBackupApprover"
	AuditKeyUpdateRoleMapping    = "delegation.updateRoleMapping"
)

//go:generate mockery --name=backupApproverRepository --exported --with-expecter
type backupApproverRepository interface {
	Create(context.Context, *domain.BackupApprover) error
	Find(context.Context, domain.ListBackupApproversFilter) ([]*domain.BackupApprover, error)
	GetByID(ctx context.Context, id string) (*domain.BackupApprover, error)
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name=roleMappingRepository --exported --with-expecter
type roleMappingRepository interface {
	Upsert(context.Context, *domain.RoleMapping) error
	GetByRole(ctx context.Context, role string) (*domain.RoleMapping, error)
	Find(context.Context) ([]*domain.RoleMapping, error)
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

type ServiceDeps struct {
	BackupApproverRepository backupApproverRepository
	RoleMappingRepository    roleMappingRepository

	Validator   *validator.Validate
	Logger      log.Logger
	AuditLogger auditLogger
}

// Service owns role holders and backup approver assignments, and resolves roles to users
type Service struct {
	backupRepo backupApproverRepository
	roleRepo   roleMappingRepository

	validator   *validator.Validate
	logger      log.Logger
	auditLogger auditLogger

	TimeNow func() time.Time
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		backupRepo:  deps.BackupApproverRepository,
		roleRepo:    deps.RoleMappingRepository,
		validator:   deps.Validator,
		logger:      deps.Logger,
		auditLogger: deps.AuditLogger,
		TimeNow:     time.Now,
	}
}

func (s *Service) AddBackupApprover(ctx context.Context, b *domain.BackupApprover) error {
	if err := s.validator.Struct(b); err != nil {
		return fmt.Errorf("validating backup approver: %w", err)
	}
	if err := b.Validate(); err != nil {
		return err
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.CreatedAt = s.TimeNow()

	if err := s.backupRepo.Create(ctx, b); err != nil {
		return fmt.Errorf("storing backup approver: %w", err)
	}

	s.audit(ctx, AuditKeyAddBackupApprover, map[string]interface{}{
		"backup_approver_id": b.ID,
		"primary":            b.PrimaryApproverID,
		"backup":             b.BackupApproverID,
		"valid_from":         b.ValidFrom,
		"valid_to":           b.ValidTo,
	})
	return nil
}

func (s *Service) RemoveBackupApprover(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyIDParam
	}

	b, err := s.backupRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("getting backup approver: %w", err)
	}
	if err := s.backupRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting backup approver: %w", err)
	}

	s.audit(ctx, AuditKeyRemoveBackupApprover, map[string]interface{}{
		"backup_approver_id": b.ID,
		"primary":            b.PrimaryApproverID,
		"backup":             b.BackupApproverID,
	})
	return nil
}

func (s *Service) ListBackupApprovers(ctx context.Context, filter domain.ListBackupApproversFilter) ([]*domain.BackupApprover, error) {
	return s.backupRepo.Find(ctx, filter)
}

// UpdateRoleMapping replaces the holders of a role. An empty list leaves the role unassigned.
func (s *Service) UpdateRoleMapping(ctx context.Context, m *domain.RoleMapping) error {
	if err := s.validator.Struct(m); err != nil {
		return fmt.Errorf("validating role mapping: %w", err)
	}

	m.UserIDs = slices.GenericsStandardizeSlice(m.UserIDs)
	existing, err := s.roleRepo.GetByRole(ctx, m.Role)
	if err != nil && !errors.Is(err, ErrRoleMappingNotFound) {
		return fmt.Errorf("getting role mapping: %w", err)
	}
	if existing != nil && slices.GenericsIsSliceEqual(existing.UserIDs, m.UserIDs) {
		*m = *existing
		return nil
	}

	m.UpdatedAt = s.TimeNow()
	if err := s.roleRepo.Upsert(ctx, m); err != nil {
		return fmt.Errorf("storing role mapping: %w", err)
	}

	var previous []string
	if existing != nil {
		previous = existing.UserIDs
	}
	s.audit(ctx, AuditKeyUpdateRoleMapping, map[string]interface{}{
		"role":     m.Role,
		"user_ids": m.UserIDs,
		"previous": previous,
	})
	return nil
}

func (s *Service) GetRoleMapping(ctx context.Context, role string) (*domain.RoleMapping, error) {
	if role == "" {
		return nil, ErrEmptyRoleParam
	}
	return s.roleRepo.GetByRole(ctx, role)
}

func (s *Service) ListRoleMappings(ctx context.Context) ([]*domain.RoleMapping, error) {
	return s.roleRepo.Find(ctx)
}

// Resolve returns the user who has to act for role at the given instant
func (s *Service) Resolve(ctx context.Context, role string, at time.Time) (string, error) {
	snapshot, err := s.Snapshot(ctx, role)
	if err != nil {
		return "", err
	}
	return snapshot.Resolve(role, at)
}

// Snapshot loads the holders of role and the backup assignments of those holders.
// A role without a mapping that is itself an email address names an individual approver.
func (s *Service) Snapshot(ctx context.Context, role string) (domain.DirectorySnapshot, error) {
	snapshot := domain.DirectorySnapshot{Roles: map[string][]string{}}

	mapping, err := s.roleRepo.GetByRole(ctx, role)
	if err != nil && !errors.Is(err, ErrRoleMappingNotFound) {
		return snapshot, fmt.Errorf("getting role mapping: %w", err)
	}

	holders := mapping.Holders()
	if len(holders) == 0 && s.validator.Var(role, "required,email") == nil {
		holders = []string{role}
	}
	snapshot.Roles[role] = holders
	if len(holders) == 0 {
		return snapshot, nil
	}

	backups, err := s.backupRepo.Find(ctx, domain.ListBackupApproversFilter{
		PrimaryApproverIDs: holders,
	})
	if err != nil {
		return snapshot, fmt.Errorf("listing backup approvers: %w", err)
	}
	snapshot.Backups = backups

	return snapshot, nil
}

// Resolver binds Resolve to ctx for the instance state machine
func (s *Service) Resolver(ctx context.Context) domain.ApproverResolver {
	return func(role string, at time.Time) (string, error) {
		return s.Resolve(ctx, role, at)
	}
}

func (s *Service) audit(ctx context.Context, action string, data map[string]interface{}) {
	if s.auditLogger == nil {
		return
	}
	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, action, data); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "action", action, "error", err)
		}
	}()
}
