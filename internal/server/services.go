package server

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goto/salt/audit"

	"github.com/goto/approvals/core/approval"
	"github.com/goto/approvals/core/delegation"
	"github.com/goto/approvals/core/event"
	"github.com/goto/approvals/core/template"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/internal/store"
	"github.com/goto/approvals/internal/store/memory"
	"github.com/goto/approvals/internal/store/postgres"
	auditPkg "github.com/goto/approvals/pkg/audit"
	"github.com/goto/approvals/pkg/log"
	"github.com/goto/approvals/plugins/notifiers"
)

const auditAppName = "approvals"

type ServiceDeps struct {
	Config    *Config
	Logger    log.Logger
	Validator *validator.Validate
	Notifier  notifiers.Client
}

type Services struct {
	TemplateService   *template.Service
	ApprovalService   *approval.Service
	DelegationService *delegation.Service
	EventService      *event.Service

	closeStore func() error
}

func (s *Services) Close() error {
	if s.closeStore == nil {
		return nil
	}
	return s.closeStore()
}

type templateRepository interface {
	Create(context.Context, *domain.FlowTemplate) error
	Find(context.Context, domain.ListFlowTemplatesFilter) ([]*domain.FlowTemplate, error)
	GetOne(ctx context.Context, id string, version uint) (*domain.FlowTemplate, error)
	Update(context.Context, *domain.FlowTemplate) error
	Delete(ctx context.Context, id string) error
}

type instanceRepository interface {
	Create(context.Context, *domain.Instance) error
	GetByID(ctx context.Context, id string) (*domain.Instance, error)
	Find(context.Context, domain.ListInstancesFilter) ([]*domain.Instance, error)
	Update(context.Context, *domain.Instance) error
}

type backupApproverRepository interface {
	Create(context.Context, *domain.BackupApprover) error
	Find(context.Context, domain.ListBackupApproversFilter) ([]*domain.BackupApprover, error)
	GetByID(ctx context.Context, id string) (*domain.BackupApprover, error)
	Delete(ctx context.Context, id string) error
}

type roleMappingRepository interface {
	Upsert(context.Context, *domain.RoleMapping) error
	GetByRole(ctx context.Context, role string) (*domain.RoleMapping, error)
	Find(context.Context) ([]*domain.RoleMapping, error)
}

type auditLogRepository interface {
	Insert(context.Context, *audit.Log) error
	List(context.Context, *domain.ListAuditLogFilter) ([]*audit.Log, error)
}

type repositories struct {
	templates       templateRepository
	instances       instanceRepository
	backupApprovers backupApproverRepository
	roleMappings    roleMappingRepository
	auditLogs       auditLogRepository

	close func() error
}

func newRepositories(cfg *store.Config) (*repositories, error) {
	switch cfg.Driver {
	case store.DriverMemory:
		return &repositories{
			templates:       memory.NewTemplateRepository(),
			instances:       memory.NewInstanceRepository(),
			backupApprovers: memory.NewBackupApproverRepository(),
			roleMappings:    memory.NewRoleMappingRepository(),
			auditLogs:       memory.NewAuditLogRepository(),
		}, nil
	case store.DriverPostgres, "":
		s, err := postgres.NewStore(cfg)
		if err != nil {
			return nil, err
		}
		if err := s.Migrate(); err != nil {
			s.Close() //nolint:errcheck
			return nil, fmt.Errorf("migrating database: %w", err)
		}
		db := s.DB()
		return &repositories{
			templates:       postgres.NewTemplateRepository(db),
			instances:       postgres.NewInstanceRepository(db),
			backupApprovers: postgres.NewBackupApproverRepository(db),
			roleMappings:    postgres.NewRoleMappingRepository(db),
			auditLogs:       postgres.NewAuditLogRepository(db),
			close:           s.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}

// InitServices opens the configured store and builds every core service on top of it
func InitServices(deps ServiceDeps) (*Services, error) {
	repos, err := newRepositories(&deps.Config.DB)
	if err != nil {
		return nil, fmt.Errorf("initializing repositories: %w", err)
	}

	auditLogger := auditPkg.New(repos.auditLogs,
		auditPkg.WithMetadata(map[string]interface{}{
			"app_name":    auditAppName,
			"app_version": deps.Config.Telemetry.ServiceVersion,
		}),
		auditPkg.WithDefaultActor(domain.SystemActorName),
	)

	templateService := template.NewService(template.ServiceDeps{
		Repository:         repos.templates,
		InstanceRepository: repos.instances,
		Validator:          deps.Validator,
		Logger:             deps.Logger,
		AuditLogger:        auditLogger,
	})
	delegationService := delegation.NewService(delegation.ServiceDeps{
		BackupApproverRepository: repos.backupApprovers,
		RoleMappingRepository:    repos.roleMappings,
		Validator:                deps.Validator,
		Logger:                   deps.Logger,
		AuditLogger:              auditLogger,
	})
	approvalService := approval.NewService(approval.ServiceDeps{
		Repository:          repos.instances,
		TemplateService:     templateService,
		RoleResolver:        delegationService,
		Notifier:            deps.Notifier,
		NotificationTimeout: deps.Config.Approval.NotificationTimeout,
		Validator:           deps.Validator,
		Logger:              deps.Logger,
		AuditLogger:         auditLogger,
	})
	eventService := event.NewService(repos.auditLogs, deps.Logger)

	return &Services{
		TemplateService:   templateService,
		ApprovalService:   approvalService,
		DelegationService: delegationService,
		EventService:      eventService,
		closeStore:        repos.close,
	}, nil
}
