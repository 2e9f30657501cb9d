package template

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/imdario/mergo"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/diff"
	"github.com/goto/approvals/pkg/log"
)

const (
	AuditKeyCreate       = "template.create"
	AuditKeyUpdate       = "template.update"
	AuditKeyToggleActive = "template.toggleActive"
	AuditKeyDelete       = "template.delete"
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(context.Context, *domain.FlowTemplate) error
	// Find returns the latest version of every template matching the filter
	Find(context.Context, domain.ListFlowTemplatesFilter) ([]*domain.FlowTemplate, error)
	// GetOne returns the latest version when version is 0
	GetOne(ctx context.Context, id string, version uint) (*domain.FlowTemplate, error)
	Update(context.Context, *domain.FlowTemplate) error
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name=instanceRepository --exported --with-expecter
type instanceRepository interface {
	Find(context.Context, domain.ListInstancesFilter) ([]*domain.Instance, error)
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

type ServiceDeps struct {
	Repository         repository
	InstanceRepository instanceRepository

	Validator   *validator.Validate
	Logger      log.Logger
	AuditLogger auditLogger
}

// Service is the flow template registry
type Service struct {
	repo         repository
	instanceRepo instanceRepository

	validator   *validator.Validate
	logger      log.Logger
	auditLogger auditLogger

	TimeNow func() time.Time
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		repo:         deps.Repository,
		instanceRepo: deps.InstanceRepository,
		validator:    deps.Validator,
		logger:       deps.Logger,
		auditLogger:  deps.AuditLogger,
		TimeNow:      time.Now,
	}
}

// Create stores the first version of a new template
func (s *Service) Create(ctx context.Context, t *domain.FlowTemplate) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.Version = 1

	if err := s.validate(t); err != nil {
		return err
	}

	if _, err := s.repo.GetOne(ctx, t.ID, 0); err == nil {
		return fmt.Errorf("%w: %q", ErrTemplateAlreadyExists, t.ID)
	} else if !errors.Is(err, ErrTemplateNotFound) {
		return fmt.Errorf("checking existing template: %w", err)
	}

	now := s.TimeNow()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.repo.Create(ctx, t); err != nil {
		return fmt.Errorf("storing template: %w", err)
	}

	s.audit(ctx, AuditKeyCreate, map[string]interface{}{
		"template_id":  t.ID,
		"version":      t.Version,
		"request_type": t.RequestType,
		"is_active":    t.IsActive,
	})

	return nil
}

// Update stores a new version of an existing template. Empty header fields and levels keep their
// previous value. Auto approval, escalation and applicability are taken as given when set.
func (s *Service) Update(ctx context.Context, t *domain.FlowTemplate) error {
	if t.ID == "" {
		return ErrEmptyIDParam
	}

	latest, err := s.repo.GetOne(ctx, t.ID, 0)
	if err != nil {
		return fmt.Errorf("getting latest template: %w", err)
	}

	// rule blocks set on the update replace the previous ones whole
	base := latest.Clone()
	if t.AutoApproval != nil {
		base.AutoApproval = nil
	}
	if t.Escalation != nil {
		base.Escalation = nil
	}
	if t.Applicability != nil {
		base.Applicability = nil
	}
	if err := mergo.Merge(t, base); err != nil {
		return fmt.Errorf("merging with latest version: %w", err)
	}
	t.Version = latest.Version + 1
	t.CreatedBy = latest.CreatedBy
	t.CreatedAt = latest.CreatedAt

	if err := s.validate(t); err != nil {
		return err
	}

	t.UpdatedAt = s.TimeNow()
	if err := s.repo.Create(ctx, t); err != nil {
		return fmt.Errorf("storing template version: %w", err)
	}

	changelog, err := diff.Changelog(latest, t, "/version", "/created_at", "/updated_at")
	if err != nil {
		s.logger.Warn(ctx, "failed to compute template changelog", "template_id", t.ID, "error", err)
	}
	s.audit(ctx, AuditKeyUpdate, map[string]interface{}{
		"template_id": t.ID,
		"version":     t.Version,
		"changes":     changelog,
	})

	return nil
}

// ToggleActive switches the latest version on or off without creating a new version
func (s *Service) ToggleActive(ctx context.Context, id string, isActive bool) (*domain.FlowTemplate, error) {
	if id == "" {
		return nil, ErrEmptyIDParam
	}

	t, err := s.repo.GetOne(ctx, id, 0)
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}
	if t.IsActive == isActive {
		return t, nil
	}

	t.IsActive = isActive
	t.UpdatedAt = s.TimeNow()
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("updating template: %w", err)
	}

	s.audit(ctx, AuditKeyToggleActive, map[string]interface{}{
		"template_id": t.ID,
		"version":     t.Version,
		"is_active":   isActive,
	})

	return t, nil
}

func (s *Service) GetOne(ctx context.Context, id string, version uint) (*domain.FlowTemplate, error) {
	if id == "" {
		return nil, ErrEmptyIDParam
	}
	return s.repo.GetOne(ctx, id, version)
}

func (s *Service) Find(ctx context.Context, filter domain.ListFlowTemplatesFilter) ([]*domain.FlowTemplate, error) {
	return s.repo.Find(ctx, filter)
}

// Delete removes every version of a template. It is refused while a pending instance uses the template.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyIDParam
	}

	if _, err := s.repo.GetOne(ctx, id, 0); err != nil {
		return fmt.Errorf("getting template: %w", err)
	}

	pending, err := s.instanceRepo.Find(ctx, domain.ListInstancesFilter{
		TemplateID: id,
		Statuses:   []string{domain.InstanceStatusPending},
		Size:       1,
	})
	if err != nil {
		return fmt.Errorf("checking pending instances: %w", err)
	}
	if len(pending) > 0 {
		return fmt.Errorf("%w: %q", ErrTemplateInUse, id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}

	s.audit(ctx, AuditKeyDelete, map[string]interface{}{
		"template_id": id,
	})

	return nil
}

// Match selects the template a new request is routed through. When more than one active template
// matches, the most recently updated wins and the ambiguity is logged.
func (s *Service) Match(ctx context.Context, rc domain.RequestContext) (*domain.FlowTemplate, error) {
	isActive := true
	templates, err := s.repo.Find(ctx, domain.ListFlowTemplatesFilter{
		RequestType: rc.RequestType,
		IsActive:    &isActive,
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	var candidates []*domain.FlowTemplate
	for _, t := range templates {
		if t.Matches(rc) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: request_type=%q department=%q location=%q", domain.ErrNoMatchingTemplate, rc.RequestType, rc.Department, rc.Location)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].UpdatedAt.Equal(candidates[j].UpdatedAt) {
			return candidates[i].UpdatedAt.After(candidates[j].UpdatedAt)
		}
		return candidates[i].ID > candidates[j].ID
	})

	if len(candidates) > 1 {
		ids := make([]string, 0, len(candidates))
		for _, c := range candidates {
			ids = append(ids, c.ID)
		}
		s.logger.Warn(ctx, "multiple active flow templates match the request",
			"request_type", rc.RequestType,
			"candidates", ids,
			"selected", candidates[0].ID,
		)
	}

	return candidates[0], nil
}

func (s *Service) validate(t *domain.FlowTemplate) error {
	if err := s.validator.Struct(t); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidTemplate, err)
	}
	return t.Validate()
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
