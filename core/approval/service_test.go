package approval_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/goto/approvals/core/approval"
	"github.com/goto/approvals/core/approval/mocks"
	"github.com/goto/approvals/core/delegation"
	"github.com/goto/approvals/core/template"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/internal/store/memory"
	"github.com/goto/approvals/pkg/log"
)

type ServiceTestSuite struct {
	suite.Suite
	mockRepository      *mocks.Repository
	mockTemplateService *mocks.TemplateService
	mockRoleResolver    *mocks.RoleResolver
	mockNotifier        *mocks.Notifier
	mockAuditLogger     *mocks.AuditLogger
	service             *approval.Service

	now time.Time
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockRepository = new(mocks.Repository)
	s.mockTemplateService = new(mocks.TemplateService)
	s.mockRoleResolver = new(mocks.RoleResolver)
	s.mockNotifier = new(mocks.Notifier)
	s.mockAuditLogger = new(mocks.AuditLogger)
	s.now = time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)

	s.service = approval.NewService(approval.ServiceDeps{
		Repository:      s.mockRepository,
		TemplateService: s.mockTemplateService,
		RoleResolver:    s.mockRoleResolver,
		Notifier:        s.mockNotifier,
		Validator:       validator.New(),
		Logger:          log.NewNoop(),
		AuditLogger:     s.mockAuditLogger,
	})
	s.service.TimeNow = func() time.Time { return s.now }
}

func (s *ServiceTestSuite) leaveTemplate() *domain.FlowTemplate {
	return &domain.FlowTemplate{
		ID:          "leave-flow",
		Version:     3,
		RequestType: domain.RequestTypeLeave,
		Name:        "Leave",
		IsActive:    true,
		Levels: []*domain.Level{
			{Order: 1, Name: "Manager", ApproverRole: "manager", Mandatory: true},
			{Order: 2, Name: "HR head", ApproverRole: "hr_head", Condition: "days > 5"},
		},
		AutoApproval: &domain.AutoApprovalRule{
			Enabled:    true,
			Conditions: []string{"days <= 1", "balance > 10"},
		},
	}
}

func (s *ServiceTestSuite) pendingInstance() *domain.Instance {
	i := domain.NewInstance("instance-1", s.leaveTemplate(), domain.RequestContext{
		RequestType: domain.RequestTypeLeave,
		RequesterID: "employee@example.com",
		Attributes:  map[string]interface{}{"days": 7, "balance": 20},
	}, s.now)
	err := i.Start(nil, func(string, time.Time) (string, error) { return "manager@example.com", nil }, s.now)
	s.Require().NoError(err)
	return i
}

// expectAsync registers an expectation whose completion is signalled on the returned channel
func expectAsync(c *mock.Call) <-chan struct{} {
	done := make(chan struct{}, 1)
	c.Run(func(mock.Arguments) { done <- struct{}{} })
	return done
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for async call")
	}
}

func (s *ServiceTestSuite) TestSubmitRequest() {
	s.Run("should return validation error when requester is missing", func() {
		s.SetupTest()

		_, err := s.service.SubmitRequest(context.Background(), domain.RequestTypeLeave, domain.RequestContext{})

		var validationErrs validator.ValidationErrors
		s.ErrorAs(err, &validationErrs)
		s.mockTemplateService.AssertNotCalled(s.T(), "Match", mock.Anything, mock.Anything)
	})

	s.Run("should surface configuration error when no template matches", func() {
		s.SetupTest()
		s.mockTemplateService.EXPECT().Match(mock.Anything, mock.Anything).Return(nil, domain.ErrNoMatchingTemplate).Once()

		_, err := s.service.SubmitRequest(context.Background(), domain.RequestTypeExpense, domain.RequestContext{RequesterID: "employee@example.com"})

		s.ErrorIs(err, domain.ErrConfiguration)
		s.mockRepository.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})

	s.Run("should fail without storing when the first level role is unresolved", func() {
		s.SetupTest()
		s.mockTemplateService.EXPECT().Match(mock.Anything, mock.Anything).Return(s.leaveTemplate(), nil).Once()
		s.mockRoleResolver.EXPECT().Resolve(mock.Anything, "manager", s.now).Return("", domain.ErrUnresolvedRole).Once()

		_, err := s.service.SubmitRequest(context.Background(), domain.RequestTypeLeave, domain.RequestContext{
			RequesterID: "employee@example.com",
			Attributes:  map[string]interface{}{"days": 3, "balance": 20},
		})

		s.ErrorIs(err, domain.ErrUnresolvedRole)
		s.mockRepository.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})

	s.Run("should assign the first level and notify the assignee", func() {
		s.SetupTest()
		s.mockTemplateService.EXPECT().Match(mock.Anything, mock.Anything).Return(s.leaveTemplate(), nil).Once()
		s.mockRoleResolver.EXPECT().Resolve(mock.Anything, "manager", s.now).Return("manager@example.com", nil).Once()
		s.mockRepository.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Instance")).Return(nil).Once()
		audited := expectAsync(s.mockAuditLogger.EXPECT().Log(mock.Anything, approval.AuditKeySubmit, mock.Anything).Return(nil).Once())

		var sent []domain.Notification
		notified := make(chan struct{}, 1)
		s.mockNotifier.EXPECT().Notify(mock.Anything, mock.Anything).
			Run(func(_ context.Context, n []domain.Notification) {
				sent = n
				notified <- struct{}{}
			}).
			Return(nil).Once()

		instance, err := s.service.SubmitRequest(context.Background(), domain.RequestTypeLeave, domain.RequestContext{
			RequesterID: "employee@example.com",
			Attributes:  map[string]interface{}{"days": 3, "balance": 20},
		})

		s.Require().NoError(err)
		s.Equal(domain.InstanceStatusPending, instance.Status)
		s.Equal("manager@example.com", instance.CurrentAssigneeID)
		s.Equal(uint(3), instance.Snapshot.Version)
		s.Equal(domain.RequestTypeLeave, instance.Context.RequestType)
		s.Empty(instance.Decisions)

		wait(s.T(), audited)
		wait(s.T(), notified)
		s.Require().Len(sent, 1)
		s.Equal("manager@example.com", sent[0].User)
		s.Equal(domain.NotificationTypeApprovalAssigned, sent[0].Message.Type)
		s.Equal(instance.ID, sent[0].Message.Variables["instance_id"])
	})

	s.Run("should auto approve without resolving any role", func() {
		s.SetupTest()
		s.mockTemplateService.EXPECT().Match(mock.Anything, mock.Anything).Return(s.leaveTemplate(), nil).Once()
		s.mockRepository.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Instance")).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
		notified := expectAsync(s.mockNotifier.EXPECT().
			Notify(mock.Anything, mock.MatchedBy(func(n []domain.Notification) bool {
				return len(n) == 1 &&
					n[0].User == "employee@example.com" &&
					n[0].Message.Type == domain.NotificationTypeRequestAutoApproved
			})).
			Return(nil).Once())

		instance, err := s.service.SubmitRequest(context.Background(), domain.RequestTypeLeave, domain.RequestContext{
			RequesterID: "employee@example.com",
			Attributes:  map[string]interface{}{"days": 1, "balance": 20},
		})

		s.Require().NoError(err)
		s.Equal(domain.InstanceStatusAutoApproved, instance.Status)
		s.Empty(instance.Decisions)
		s.Empty(instance.CurrentAssigneeID)
		wait(s.T(), notified)
		s.mockRoleResolver.AssertNotCalled(s.T(), "Resolve", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should not fail the submission when notification fails", func() {
		s.SetupTest()
		s.mockTemplateService.EXPECT().Match(mock.Anything, mock.Anything).Return(s.leaveTemplate(), nil).Once()
		s.mockRoleResolver.EXPECT().Resolve(mock.Anything, "manager", s.now).Return("manager@example.com", nil).Once()
		s.mockRepository.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("audit down")).Maybe()
		notified := expectAsync(s.mockNotifier.EXPECT().Notify(mock.Anything, mock.Anything).
			Return([]error{errors.New("smtp down")}).Once())

		instance, err := s.service.SubmitRequest(context.Background(), domain.RequestTypeLeave, domain.RequestContext{
			RequesterID: "employee@example.com",
			Attributes:  map[string]interface{}{"days": 3, "balance": 20},
		})

		s.NoError(err)
		s.Equal(domain.InstanceStatusPending, instance.Status)
		wait(s.T(), notified)
	})
}

func (s *ServiceTestSuite) TestDecide() {
	s.Run("should validate params", func() {
		s.SetupTest()

		_, err := s.service.Decide(context.Background(), "", "manager@example.com", approval.ActionApprove, "")
		s.ErrorIs(err, approval.ErrInstanceIDEmptyParam)

		_, err = s.service.Decide(context.Background(), "instance-1", "", approval.ActionApprove, "")
		s.ErrorIs(err, approval.ErrActorEmptyParam)

		_, err = s.service.Decide(context.Background(), "instance-1", "manager@example.com", "skip", "")
		s.ErrorIs(err, approval.ErrInvalidAction)
	})

	s.Run("should reject actors other than the current assignee without updating", func() {
		s.SetupTest()
		s.mockRepository.EXPECT().GetByID(mock.Anything, "instance-1").Return(s.pendingInstance(), nil).Once()

		_, err := s.service.Decide(context.Background(), "instance-1", "intruder@example.com", approval.ActionApprove, "")

		s.ErrorIs(err, domain.ErrUnauthorizedActor)
		s.mockRepository.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	})

	s.Run("should return stale error when the instance changed concurrently", func() {
		s.SetupTest()
		s.mockRepository.EXPECT().GetByID(mock.Anything, "instance-1").Return(s.pendingInstance(), nil).Once()
		s.mockRoleResolver.EXPECT().Resolve(mock.Anything, "hr_head", s.now).Return("hr@example.com", nil).Once()
		s.mockRepository.EXPECT().Update(mock.Anything, mock.Anything).Return(domain.ErrStaleInstance).Once()

		_, err := s.service.Decide(context.Background(), "instance-1", "manager@example.com", approval.ActionApprove, "")

		s.ErrorIs(err, domain.ErrStaleInstance)
		s.mockAuditLogger.AssertNotCalled(s.T(), "Log", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should halt the chain on rejection and notify the requester", func() {
		s.SetupTest()
		s.mockRepository.EXPECT().GetByID(mock.Anything, "instance-1").Return(s.pendingInstance(), nil).Once()
		s.mockRepository.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, approval.AuditKeyReject, mock.Anything).Return(nil).Maybe()
		notified := expectAsync(s.mockNotifier.EXPECT().
			Notify(mock.Anything, mock.MatchedBy(func(n []domain.Notification) bool {
				return len(n) == 1 &&
					n[0].User == "employee@example.com" &&
					n[0].Message.Type == domain.NotificationTypeRequestRejected &&
					n[0].Message.Variables["comment"] == "not now"
			})).
			Return(nil).Once())

		instance, err := s.service.Decide(context.Background(), "instance-1", "MANAGER@example.com", approval.ActionReject, "not now")

		s.Require().NoError(err)
		s.Equal(domain.InstanceStatusRejected, instance.Status)
		s.Require().Len(instance.Decisions, 1)
		s.Equal(domain.DecisionRejected, instance.Decisions[0].Decision)
		s.Equal(1, instance.Decisions[0].LevelOrder)
		wait(s.T(), notified)
		s.mockRoleResolver.AssertNotCalled(s.T(), "Resolve", mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *ServiceTestSuite) TestCancel() {
	s.Run("should conclude a pending instance", func() {
		s.SetupTest()
		s.mockRepository.EXPECT().GetByID(mock.Anything, "instance-1").Return(s.pendingInstance(), nil).Once()
		s.mockRepository.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, approval.AuditKeyCancel, mock.Anything).Return(nil).Maybe()
		s.mockNotifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Maybe()

		instance, err := s.service.Cancel(context.Background(), "instance-1", "admin@example.com", "duplicate")

		s.Require().NoError(err)
		s.Equal(domain.InstanceStatusCancelled, instance.Status)
		s.Equal("admin@example.com", instance.CancelledBy)
		s.Empty(instance.CurrentAssigneeID)
	})

	s.Run("should refuse a concluded instance", func() {
		s.SetupTest()
		i := s.pendingInstance()
		s.Require().NoError(i.Cancel("admin@example.com", "", s.now))
		s.mockRepository.EXPECT().GetByID(mock.Anything, "instance-1").Return(i, nil).Once()

		_, err := s.service.Cancel(context.Background(), "instance-1", "admin@example.com", "")

		s.ErrorIs(err, domain.ErrNotPending)
		s.mockRepository.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	})

	s.Run("should pass through not found", func() {
		s.SetupTest()
		s.mockRepository.EXPECT().GetByID(mock.Anything, "missing").Return(nil, approval.ErrInstanceNotFound).Once()

		_, err := s.service.Cancel(context.Background(), "missing", "admin@example.com", "")

		s.ErrorIs(err, approval.ErrInstanceNotFound)
	})
}

func (s *ServiceTestSuite) TestEscalate() {
	escalatingInstance := func() *domain.Instance {
		i := s.pendingInstance()
		i.Snapshot.Escalation = &domain.EscalationRule{Enabled: true, AfterDuration: "24h", EscalateToRole: "department_head"}
		return i
	}

	s.Run("should reassign the level once", func() {
		s.SetupTest()
		i := escalatingInstance()
		s.mockRepository.EXPECT().GetByID(mock.Anything, "instance-1").Return(i, nil).Once()
		s.mockRoleResolver.EXPECT().Resolve(mock.Anything, "department_head", s.now).Return("head@example.com", nil).Once()
		s.mockRepository.EXPECT().Update(mock.Anything, i).Return(nil).Once()
		s.mockAuditLogger.EXPECT().Log(mock.Anything, approval.AuditKeyEscalate, mock.Anything).Return(nil).Maybe()
		s.mockNotifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Maybe()

		got, escalated, err := s.service.Escalate(context.Background(), "instance-1", 1)

		s.Require().NoError(err)
		s.True(escalated)
		s.Equal("head@example.com", got.CurrentAssigneeID)
		s.Equal(domain.InstanceStatusPending, got.Status)
		s.Equal(0, got.CurrentLevelIndex)
	})

	s.Run("should be a no-op for an escalated level", func() {
		s.SetupTest()
		i := escalatingInstance()
		i.EscalatedLevels = []int{1}
		s.mockRepository.EXPECT().GetByID(mock.Anything, "instance-1").Return(i, nil).Once()

		_, escalated, err := s.service.Escalate(context.Background(), "instance-1", 1)

		s.NoError(err)
		s.False(escalated)
		s.mockRepository.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	})

	s.Run("should report stale level orders", func() {
		s.SetupTest()
		s.mockRepository.EXPECT().GetByID(mock.Anything, "instance-1").Return(escalatingInstance(), nil).Once()

		_, _, err := s.service.Escalate(context.Background(), "instance-1", 2)

		s.ErrorIs(err, domain.ErrStaleInstance)
	})
}

func (s *ServiceTestSuite) TestListPendingFor() {
	s.Run("should require a user", func() {
		s.SetupTest()
		_, err := s.service.ListPendingFor(context.Background(), "")
		s.ErrorIs(err, approval.ErrActorEmptyParam)
	})

	s.Run("should filter on pending status and assignee", func() {
		s.SetupTest()
		expected := []*domain.Instance{s.pendingInstance()}
		s.mockRepository.EXPECT().Find(mock.Anything, domain.ListInstancesFilter{
			Statuses:   []string{domain.InstanceStatusPending},
			AssigneeID: "manager@example.com",
		}).Return(expected, nil).Once()

		got, err := s.service.ListPendingFor(context.Background(), "manager@example.com")

		s.NoError(err)
		s.Equal(expected, got)
	})
}

// WorkflowTestSuite runs the engine end to end on the in-memory store
type WorkflowTestSuite struct {
	suite.Suite
	templateService   *template.Service
	delegationService *delegation.Service
	service           *approval.Service
	now               time.Time
}

func TestWorkflow(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}

func (s *WorkflowTestSuite) SetupTest() {
	ctx := context.Background()
	s.now = time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)
	timeNow := func() time.Time { return s.now }
	v := validator.New()
	logger := log.NewNoop()
	instanceRepo := memory.NewInstanceRepository()

	s.templateService = template.NewService(template.ServiceDeps{
		Repository:         memory.NewTemplateRepository(),
		InstanceRepository: instanceRepo,
		Validator:          v,
		Logger:             logger,
	})
	s.templateService.TimeNow = timeNow
	s.delegationService = delegation.NewService(delegation.ServiceDeps{
		BackupApproverRepository: memory.NewBackupApproverRepository(),
		RoleMappingRepository:    memory.NewRoleMappingRepository(),
		Validator:                v,
		Logger:                   logger,
	})
	s.delegationService.TimeNow = timeNow
	s.service = approval.NewService(approval.ServiceDeps{
		Repository:      instanceRepo,
		TemplateService: s.templateService,
		RoleResolver:    s.delegationService,
		Validator:       v,
		Logger:          logger,
	})
	s.service.TimeNow = timeNow

	for role, users := range map[string][]string{
		"manager": {"manager@example.com"},
		"hr_head": {"hr@example.com"},
	} {
		s.Require().NoError(s.delegationService.UpdateRoleMapping(ctx, &domain.RoleMapping{Role: role, UserIDs: users}))
	}
	s.Require().NoError(s.templateService.Create(ctx, &domain.FlowTemplate{
		ID:          "leave-flow",
		RequestType: domain.RequestTypeLeave,
		Name:        "Leave",
		IsActive:    true,
		Levels: []*domain.Level{
			{Order: 1, Name: "Manager", ApproverRole: "manager", Mandatory: true},
			{Order: 2, Name: "HR head", ApproverRole: "hr_head", Condition: "days > 5"},
		},
		AutoApproval: &domain.AutoApprovalRule{
			Enabled:    true,
			Conditions: []string{"days <= 1", "balance > 10"},
		},
	}))
}

func (s *WorkflowTestSuite) submit(attrs map[string]interface{}) *domain.Instance {
	i, err := s.service.SubmitRequest(context.Background(), domain.RequestTypeLeave, domain.RequestContext{
		RequesterID: "employee@example.com",
		Attributes:  attrs,
	})
	s.Require().NoError(err)
	return i
}

func (s *WorkflowTestSuite) TestShortLeaveSkipsOptionalLevel() {
	i := s.submit(map[string]interface{}{"days": 3, "balance": 20})
	s.Equal("manager@example.com", i.CurrentAssigneeID)

	i, err := s.service.Decide(context.Background(), i.ID, "manager@example.com", approval.ActionApprove, "")

	s.Require().NoError(err)
	s.Equal(domain.InstanceStatusApproved, i.Status)
	s.Len(i.Decisions, 1)
}

func (s *WorkflowTestSuite) TestLongLeaveNeedsBothLevels() {
	i := s.submit(map[string]interface{}{"days": 7, "balance": 20})

	i, err := s.service.Decide(context.Background(), i.ID, "manager@example.com", approval.ActionApprove, "")
	s.Require().NoError(err)
	s.Equal(domain.InstanceStatusPending, i.Status)
	s.Equal("hr@example.com", i.CurrentAssigneeID)

	i, err = s.service.Decide(context.Background(), i.ID, "hr@example.com", approval.ActionApprove, "ok")
	s.Require().NoError(err)
	s.Equal(domain.InstanceStatusApproved, i.Status)
	s.Require().Len(i.Decisions, 2)
	s.Equal(1, i.Decisions[0].LevelOrder)
	s.Equal(2, i.Decisions[1].LevelOrder)

	_, err = s.service.Decide(context.Background(), i.ID, "hr@example.com", approval.ActionApprove, "")
	s.ErrorIs(err, domain.ErrNotPending)
}

func (s *WorkflowTestSuite) TestAutoApproval() {
	i := s.submit(map[string]interface{}{"days": 1, "balance": 20})

	s.Equal(domain.InstanceStatusAutoApproved, i.Status)
	s.Empty(i.Decisions)

	stored, err := s.service.GetInstance(context.Background(), i.ID)
	s.Require().NoError(err)
	s.Equal(domain.InstanceStatusAutoApproved, stored.Status)
}

func (s *WorkflowTestSuite) TestMissingAttributeFailsSubmission() {
	_, err := s.service.SubmitRequest(context.Background(), domain.RequestTypeLeave, domain.RequestContext{
		RequesterID: "employee@example.com",
		Attributes:  map[string]interface{}{"balance": 20},
	})

	s.ErrorIs(err, domain.ErrInvalidCondition)
}

func (s *WorkflowTestSuite) TestTemplateChangesDoNotAffectRunningInstances() {
	i := s.submit(map[string]interface{}{"days": 3, "balance": 20})

	s.Require().NoError(s.templateService.Update(context.Background(), &domain.FlowTemplate{
		ID: "leave-flow",
		Levels: []*domain.Level{
			{Order: 1, Name: "HR head", ApproverRole: "hr_head", Mandatory: true},
		},
	}))

	i, err := s.service.Decide(context.Background(), i.ID, "manager@example.com", approval.ActionApprove, "")
	s.Require().NoError(err)
	s.Equal(domain.InstanceStatusApproved, i.Status)
	s.Equal(uint(1), i.Snapshot.Version)
}

func (s *WorkflowTestSuite) TestBackupApproverTakesOver() {
	s.Require().NoError(s.delegationService.AddBackupApprover(context.Background(), &domain.BackupApprover{
		PrimaryApproverID: "manager@example.com",
		BackupApproverID:  "deputy@example.com",
		ValidFrom:         s.now.Add(-time.Hour),
		ValidTo:           s.now.Add(time.Hour),
	}))

	i := s.submit(map[string]interface{}{"days": 3, "balance": 20})
	s.Equal("deputy@example.com", i.CurrentAssigneeID)

	_, err := s.service.Decide(context.Background(), i.ID, "manager@example.com", approval.ActionApprove, "")
	s.ErrorIs(err, domain.ErrUnauthorizedActor)

	i, err = s.service.Decide(context.Background(), i.ID, "deputy@example.com", approval.ActionApprove, "")
	s.Require().NoError(err)
	s.Equal(domain.InstanceStatusApproved, i.Status)
}

func (s *WorkflowTestSuite) TestConcurrentDecisionsApplyOnce() {
	i := s.submit(map[string]interface{}{"days": 3, "balance": 20})

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		errs      []error
	)
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Decide(context.Background(), i.ID, "manager@example.com", approval.ActionApprove, "")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			errs = append(errs, err)
		}()
	}
	wg.Wait()

	s.Equal(1, successes)
	for _, err := range errs {
		s.ErrorIs(err, domain.ErrNotPending)
	}

	stored, err := s.service.GetInstance(context.Background(), i.ID)
	s.Require().NoError(err)
	s.Len(stored.Decisions, 1)
}

func TestConcurrentDecideAndCancel(t *testing.T) {
	ctx := context.Background()
	v := validator.New()
	instanceRepo := memory.NewInstanceRepository()
	templateService := template.NewService(template.ServiceDeps{
		Repository:         memory.NewTemplateRepository(),
		InstanceRepository: instanceRepo,
		Validator:          v,
		Logger:             log.NewNoop(),
	})
	require.NoError(t, templateService.Create(ctx, &domain.FlowTemplate{
		ID:          "asset-flow",
		RequestType: domain.RequestTypeAsset,
		Name:        "Asset",
		IsActive:    true,
		Levels:      []*domain.Level{{Order: 1, ApproverRole: "it@example.com", Mandatory: true}},
	}))
	delegationService := delegation.NewService(delegation.ServiceDeps{
		BackupApproverRepository: memory.NewBackupApproverRepository(),
		RoleMappingRepository:    memory.NewRoleMappingRepository(),
		Validator:                v,
		Logger:                   log.NewNoop(),
	})
	svc := approval.NewService(approval.ServiceDeps{
		Repository:      instanceRepo,
		TemplateService: templateService,
		RoleResolver:    delegationService,
		Validator:       v,
		Logger:          log.NewNoop(),
	})

	i, err := svc.SubmitRequest(ctx, domain.RequestTypeAsset, domain.RequestContext{RequesterID: "employee@example.com"})
	require.NoError(t, err)
	require.Equal(t, "it@example.com", i.CurrentAssigneeID)

	var wg sync.WaitGroup
	var decideErr, cancelErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, decideErr = svc.Decide(ctx, i.ID, "it@example.com", approval.ActionApprove, "")
	}()
	go func() {
		defer wg.Done()
		_, cancelErr = svc.Cancel(ctx, i.ID, "admin@example.com", "")
	}()
	wg.Wait()

	assert.True(t, (decideErr == nil) != (cancelErr == nil), "exactly one operation should win")
	stored, err := svc.GetInstance(ctx, i.ID)
	require.NoError(t, err)
	if decideErr == nil {
		assert.Equal(t, domain.InstanceStatusApproved, stored.Status)
		assert.ErrorIs(t, cancelErr, domain.ErrNotPending)
	} else {
		assert.Equal(t, domain.InstanceStatusCancelled, stored.Status)
		assert.ErrorIs(t, decideErr, domain.ErrNotPending)
	}
}
