package approval

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/log"
	"github.com/goto/approvals/plugins/notifiers"
)

const (
	AuditKeySubmit   = "instance.submit"
	AuditKeyApprove  = "instance.approve"
	AuditKeyReject   = "instance.reject"
	AuditKeyEscalate = "instance.escalate"
	AuditKeyCancel   = "instance.cancel"

	ActionApprove = "approve"
	ActionReject  = "reject"

	defaultNotificationTimeout = 10 * time.Second
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(context.Context, *domain.Instance) error
	GetByID(ctx context.Context, id string) (*domain.Instance, error)
	Find(context.Context, domain.ListInstancesFilter) ([]*domain.Instance, error)
	// Update persists the instance only if the stored revision still equals instance.Revision,
	// bumps the revision on success and fails with domain.ErrStaleInstance otherwise
	Update(context.Context, *domain.Instance) error
}

//go:generate mockery --name=templateService --exported --with-expecter
type templateService interface {
	Match(context.Context, domain.RequestContext) (*domain.FlowTemplate, error)
}

//go:generate mockery --name=roleResolver --exported --with-expecter
type roleResolver interface {
	Resolve(ctx context.Context, role string, at time.Time) (string, error)
}

//go:generate mockery --name=notifier --exported --with-expecter
type notifier interface {
	notifiers.Client
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

type ServiceDeps struct {
	Repository      repository
	TemplateService templateService
	RoleResolver    roleResolver

	Notifier            notifier
	NotificationTimeout time.Duration
	Validator           *validator.Validate
	Logger              log.Logger
	AuditLogger         auditLogger
}

// Service runs approval instances through their flow template
type Service struct {
	repo            repository
	templateService templateService
	roleResolver    roleResolver

	notifier            notifier
	notificationTimeout time.Duration
	validator           *validator.Validate
	logger              log.Logger
	auditLogger         auditLogger

	locks   *instanceLocks
	metrics metrics

	TimeNow func() time.Time
}

func NewService(deps ServiceDeps) *Service {
	timeout := deps.NotificationTimeout
	if timeout <= 0 {
		timeout = defaultNotificationTimeout
	}

	return &Service{
		repo:                deps.Repository,
		templateService:     deps.TemplateService,
		roleResolver:        deps.RoleResolver,
		notifier:            deps.Notifier,
		notificationTimeout: timeout,
		validator:           deps.Validator,
		logger:              deps.Logger,
		auditLogger:         deps.AuditLogger,
		locks:               newInstanceLocks(),
		metrics:             newMetrics(),
		TimeNow:             time.Now,
	}
}

// SubmitRequest routes a new request through the matching template. The returned instance is
// either auto approved, approved for lack of applicable levels, or pending on its first level.
func (s *Service) SubmitRequest(ctx context.Context, requestType string, rc domain.RequestContext) (*domain.Instance, error) {
	rc.RequestType = requestType
	if err := s.validator.Struct(rc); err != nil {
		return nil, fmt.Errorf("validating request context: %w", err)
	}

	t, err := s.templateService.Match(ctx, rc)
	if err != nil {
		return nil, err
	}

	now := s.TimeNow()
	instance := domain.NewInstance(uuid.NewString(), t, rc, now)
	if err := instance.Start(t.AutoApproval, s.resolver(ctx), now); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, instance); err != nil {
		return nil, fmt.Errorf("storing instance: %w", err)
	}

	s.metrics.add(ctx, s.metrics.submissions,
		attribute.String("request_type", rc.RequestType),
		attribute.String("status", instance.Status),
	)
	s.audit(ctx, AuditKeySubmit, map[string]interface{}{
		"instance_id":      instance.ID,
		"template_id":      instance.TemplateID,
		"template_version": instance.Snapshot.Version,
		"requester_id":     rc.RequesterID,
		"status":           instance.Status,
		"assignee":         instance.CurrentAssigneeID,
	})

	switch instance.Status {
	case domain.InstanceStatusAutoApproved:
		s.notify(ctx, requesterNotification(instance, domain.NotificationTypeRequestAutoApproved, nil))
	case domain.InstanceStatusApproved:
		s.notify(ctx, requesterNotification(instance, domain.NotificationTypeRequestApproved, nil))
	default:
		s.notify(ctx, assigneeNotification(instance, domain.NotificationTypeApprovalAssigned, nil))
	}

	return instance, nil
}

// Decide applies the current assignee's approve or reject action
func (s *Service) Decide(ctx context.Context, id, actorID, action, comment string) (*domain.Instance, error) {
	if id == "" {
		return nil, ErrInstanceIDEmptyParam
	}
	if actorID == "" {
		return nil, ErrActorEmptyParam
	}

	var decision, auditKey string
	switch action {
	case ActionApprove, domain.DecisionApproved:
		decision, auditKey = domain.DecisionApproved, AuditKeyApprove
	case ActionReject, domain.DecisionRejected:
		decision, auditKey = domain.DecisionRejected, AuditKeyReject
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	instance, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	level := instance.CurrentLevel()
	now := s.TimeNow()
	if err := instance.Decide(actorID, decision, comment, s.resolver(ctx), now); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, instance); err != nil {
		return nil, fmt.Errorf("updating instance: %w", err)
	}

	s.metrics.add(ctx, s.metrics.decisions,
		attribute.String("request_type", instance.Context.RequestType),
		attribute.String("decision", decision),
	)
	s.audit(ctx, auditKey, map[string]interface{}{
		"instance_id": instance.ID,
		"level_order": level.Order,
		"actor":       actorID,
		"comment":     comment,
		"status":      instance.Status,
		"assignee":    instance.CurrentAssigneeID,
	})

	switch instance.Status {
	case domain.InstanceStatusApproved:
		s.notify(ctx, requesterNotification(instance, domain.NotificationTypeRequestApproved, nil))
	case domain.InstanceStatusRejected:
		s.notify(ctx, requesterNotification(instance, domain.NotificationTypeRequestRejected, map[string]interface{}{
			"actor":   actorID,
			"comment": comment,
		}))
	case domain.InstanceStatusPending:
		s.notify(ctx, assigneeNotification(instance, domain.NotificationTypeApprovalAssigned, nil))
	}

	return instance, nil
}

// Escalate reassigns levelOrder to the escalation role. The boolean is false when nothing changed
// because the level was already escalated or the snapshot carries no active escalation rule.
func (s *Service) Escalate(ctx context.Context, id string, levelOrder int) (*domain.Instance, bool, error) {
	if id == "" {
		return nil, false, ErrInstanceIDEmptyParam
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	instance, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	previousAssignee := instance.CurrentAssigneeID
	escalated, err := instance.Escalate(levelOrder, s.resolver(ctx), s.TimeNow())
	if err != nil {
		return nil, false, err
	}
	if !escalated {
		return instance, false, nil
	}

	if err := s.repo.Update(ctx, instance); err != nil {
		return nil, false, fmt.Errorf("updating instance: %w", err)
	}

	s.metrics.add(ctx, s.metrics.escalations,
		attribute.String("request_type", instance.Context.RequestType),
	)
	s.audit(ctx, AuditKeyEscalate, map[string]interface{}{
		"instance_id":       instance.ID,
		"level_order":       levelOrder,
		"previous_assignee": previousAssignee,
		"assignee":          instance.CurrentAssigneeID,
	})

	n := assigneeNotification(instance, domain.NotificationTypeApprovalEscalated, map[string]interface{}{
		"previous_assignee": previousAssignee,
	})
	n.Channels = instance.Snapshot.Escalation.NotifyChannels
	s.notify(ctx, n)

	return instance, true, nil
}

// Cancel concludes a pending instance without further decisions
func (s *Service) Cancel(ctx context.Context, id, actorID, reason string) (*domain.Instance, error) {
	if id == "" {
		return nil, ErrInstanceIDEmptyParam
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	instance, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := instance.Cancel(actorID, reason, s.TimeNow()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, instance); err != nil {
		return nil, fmt.Errorf("updating instance: %w", err)
	}

	s.audit(ctx, AuditKeyCancel, map[string]interface{}{
		"instance_id": instance.ID,
		"actor":       actorID,
		"reason":      reason,
	})
	s.notify(ctx, requesterNotification(instance, domain.NotificationTypeRequestCancelled, map[string]interface{}{
		"actor":  actorID,
		"reason": reason,
	}))

	return instance, nil
}

func (s *Service) GetInstance(ctx context.Context, id string) (*domain.Instance, error) {
	if id == "" {
		return nil, ErrInstanceIDEmptyParam
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListInstances(ctx context.Context, filter domain.ListInstancesFilter) ([]*domain.Instance, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, fmt.Errorf("validating filter: %w", err)
	}
	return s.repo.Find(ctx, filter)
}

// ListPendingFor returns the pending instances userID currently has to act on
func (s *Service) ListPendingFor(ctx context.Context, userID string) ([]*domain.Instance, error) {
	if userID == "" {
		return nil, ErrActorEmptyParam
	}
	return s.repo.Find(ctx, domain.ListInstancesFilter{
		Statuses:   []string{domain.InstanceStatusPending},
		AssigneeID: userID,
	})
}

func (s *Service) ListPending(ctx context.Context) ([]*domain.Instance, error) {
	return s.repo.Find(ctx, domain.ListInstancesFilter{
		Statuses: []string{domain.InstanceStatusPending},
	})
}

func (s *Service) resolver(ctx context.Context) domain.ApproverResolver {
	return func(role string, at time.Time) (string, error) {
		return s.roleResolver.Resolve(ctx, role, at)
	}
}

func (s *Service) notify(ctx context.Context, notifications ...domain.Notification) {
	if s.notifier == nil || len(notifications) == 0 {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notificationTimeout)
		defer cancel()
		if errs := s.notifier.Notify(ctx, notifications); errs != nil {
			for _, err1 := range errs {
				s.logger.Error(ctx, "failed to send notifications", "error", err1.Error())
			}
		}
	}()
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

func requesterNotification(i *domain.Instance, notificationType string, extra map[string]interface{}) domain.Notification {
	return newNotification(i, i.Context.RequesterID, notificationType, extra)
}

func assigneeNotification(i *domain.Instance, notificationType string, extra map[string]interface{}) domain.Notification {
	return newNotification(i, i.CurrentAssigneeID, notificationType, extra)
}

func newNotification(i *domain.Instance, user, notificationType string, extra map[string]interface{}) domain.Notification {
	variables := map[string]interface{}{
		"instance_id":   i.ID,
		"template_name": i.Snapshot.Name,
		"request_type":  i.Context.RequestType,
		"requester":     i.Context.RequesterID,
		"status":        i.Status,
	}
	if level := i.CurrentLevel(); level != nil {
		variables["level_order"] = level.Order
		variables["level_name"] = level.Name
	}
	for k, v := range extra {
		variables[k] = v
	}

	return domain.Notification{
		User: user,
		Labels: map[string]string{
			"instance_id":  i.ID,
			"request_type": i.Context.RequestType,
		},
		Message: domain.NotificationMessage{
			Type:      notificationType,
			Variables: variables,
		},
	}
}
