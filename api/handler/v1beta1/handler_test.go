package v1beta1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"

	"github.com/goto/approvals/api/handler/v1beta1"
	"github.com/goto/approvals/core/approval"
	"github.com/goto/approvals/core/delegation"
	"github.com/goto/approvals/core/event"
	"github.com/goto/approvals/core/template"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/internal/store/memory"
	"github.com/goto/approvals/pkg/audit"
	"github.com/goto/approvals/pkg/log"
)

const authHeader = "X-Auth-Email"

type userContextKey struct{}

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	now    time.Time
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.now = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	timeNow := func() time.Time { return s.now }

	v := validator.New()
	logger := log.NewNoop()
	instanceRepo := memory.NewInstanceRepository()
	auditRepo := memory.NewAuditLogRepository()
	auditLogger := audit.New(auditRepo)

	templateService := template.NewService(template.ServiceDeps{
		Repository:         memory.NewTemplateRepository(),
		InstanceRepository: instanceRepo,
		Validator:          v,
		Logger:             logger,
		AuditLogger:        auditLogger,
	})
	templateService.TimeNow = timeNow
	delegationService := delegation.NewService(delegation.ServiceDeps{
		BackupApproverRepository: memory.NewBackupApproverRepository(),
		RoleMappingRepository:    memory.NewRoleMappingRepository(),
		Validator:                v,
		Logger:                   logger,
		AuditLogger:              auditLogger,
	})
	delegationService.TimeNow = timeNow
	approvalService := approval.NewService(approval.ServiceDeps{
		Repository:      instanceRepo,
		TemplateService: templateService,
		RoleResolver:    delegationService,
		Validator:       v,
		Logger:          logger,
		AuditLogger:     auditLogger,
	})
	approvalService.TimeNow = timeNow

	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		if user := c.GetHeader(authHeader); user != "" {
			ctx := context.WithValue(c.Request.Context(), userContextKey{}, user)
			c.Request = c.Request.WithContext(audit.WithActor(ctx, user))
		}
		c.Next()
	})
	v1beta1.NewServer(
		templateService,
		approvalService,
		delegationService,
		event.NewService(auditRepo, logger),
		logger,
		userContextKey{},
	).RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) do(method, path, user string, body interface{}) *httptest.ResponseRecorder {
	var reqBody bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&reqBody).Encode(body))
	}
	req := httptest.NewRequest(method, path, &reqBody)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(authHeader, user)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder, v interface{}) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v))
}

func (s *HandlerTestSuite) setupLeaveFlow() {
	w := s.do(http.MethodPut, "/v1beta1/roles/manager", "admin@example.com", map[string]interface{}{
		"user_ids": []string{"manager@example.com"},
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	w = s.do(http.MethodPut, "/v1beta1/roles/hr", "admin@example.com", map[string]interface{}{
		"user_ids": []string{"hr@example.com"},
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/v1beta1/templates", "admin@example.com", map[string]interface{}{
		"id":           "leave-flow",
		"request_type": "leave",
		"name":         "Leave approval",
		"is_active":    true,
		"levels": []map[string]interface{}{
			{"order": 1, "name": "Manager", "approver_role": "manager", "mandatory": true},
			{"order": 2, "name": "HR", "approver_role": "hr", "condition": "days > 3"},
		},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) submitLeave(days int) *domain.Instance {
	w := s.do(http.MethodPost, "/v1beta1/requests", "employee@example.com", map[string]interface{}{
		"request_type": "leave",
		"attributes":   map[string]interface{}{"days": days},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Instance *domain.Instance `json:"instance"`
	}
	s.decode(w, &resp)
	return resp.Instance
}

func (s *HandlerTestSuite) TestSubmitAndDecide() {
	s.setupLeaveFlow()

	s.Run("should route a long leave through manager then hr", func() {
		instance := s.submitLeave(5)
		s.Equal(domain.InstanceStatusPending, instance.Status)
		s.Equal("employee@example.com", instance.Context.RequesterID)
		s.Equal("manager@example.com", instance.CurrentAssigneeID)

		w := s.do(http.MethodGet, "/v1beta1/me/approvals", "manager@example.com", nil)
		s.Require().Equal(http.StatusOK, w.Code)
		var pending struct {
			Instances []*domain.Instance `json:"instances"`
		}
		s.decode(w, &pending)
		s.Require().Len(pending.Instances, 1)
		s.Equal(instance.ID, pending.Instances[0].ID)

		w = s.do(http.MethodPost, "/v1beta1/instances/"+instance.ID+"/decisions", "manager@example.com", map[string]string{
			"action": "approve",
		})
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var decided struct {
			Instance *domain.Instance `json:"instance"`
		}
		s.decode(w, &decided)
		s.Equal(domain.InstanceStatusPending, decided.Instance.Status)
		s.Equal("hr@example.com", decided.Instance.CurrentAssigneeID)

		w = s.do(http.MethodPost, "/v1beta1/instances/"+instance.ID+"/decisions", "hr@example.com", map[string]string{
			"action":  "approve",
			"comment": "enjoy",
		})
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		s.decode(w, &decided)
		s.Equal(domain.InstanceStatusApproved, decided.Instance.Status)
		s.Len(decided.Instance.Decisions, 2)
	})

	s.Run("should forbid decisions from someone other than the assignee", func() {
		instance := s.submitLeave(1)

		w := s.do(http.MethodPost, "/v1beta1/instances/"+instance.ID+"/decisions", "hr@example.com", map[string]string{
			"action": "approve",
		})
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("should reject unknown actions as bad request", func() {
		instance := s.submitLeave(1)

		w := s.do(http.MethodPost, "/v1beta1/instances/"+instance.ID+"/decisions", "manager@example.com", map[string]string{
			"action": "maybe",
		})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("should conflict when deciding a concluded instance", func() {
		instance := s.submitLeave(1)
		w := s.do(http.MethodPost, "/v1beta1/instances/"+instance.ID+"/decisions", "manager@example.com", map[string]string{
			"action": "reject",
		})
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		w = s.do(http.MethodPost, "/v1beta1/instances/"+instance.ID+"/decisions", "manager@example.com", map[string]string{
			"action": "approve",
		})
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("should require an authenticated user", func() {
		w := s.do(http.MethodPost, "/v1beta1/requests", "", map[string]interface{}{"request_type": "leave"})
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *HandlerTestSuite) TestSubmitWithoutMatchingTemplate() {
	w := s.do(http.MethodPost, "/v1beta1/requests", "employee@example.com", map[string]interface{}{
		"request_type": "expense",
	})
	s.Equal(http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	s.decode(w, &resp)
	s.Contains(resp["message"], "no active flow template")
}

func (s *HandlerTestSuite) TestCancelInstance() {
	s.setupLeaveFlow()
	instance := s.submitLeave(2)

	w := s.do(http.MethodPost, "/v1beta1/instances/"+instance.ID+"/cancel", "employee@example.com", map[string]string{
		"reason": "plans changed",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Instance *domain.Instance `json:"instance"`
	}
	s.decode(w, &resp)
	s.Equal(domain.InstanceStatusCancelled, resp.Instance.Status)
	s.Equal("plans changed", resp.Instance.CancelReason)

	w = s.do(http.MethodPost, "/v1beta1/instances/"+instance.ID+"/cancel", "employee@example.com", nil)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestGetInstance() {
	w := s.do(http.MethodGet, "/v1beta1/instances/missing", "", nil)
	s.Equal(http.StatusNotFound, w.Code)

	s.setupLeaveFlow()
	instance := s.submitLeave(2)
	w = s.do(http.MethodGet, "/v1beta1/instances/"+instance.ID, "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp struct {
		Instance *domain.Instance `json:"instance"`
	}
	s.decode(w, &resp)
	s.Equal(instance.ID, resp.Instance.ID)
	s.Equal("leave-flow", resp.Instance.TemplateID)
}

func (s *HandlerTestSuite) TestListInstances() {
	s.setupLeaveFlow()
	first := s.submitLeave(2)
	s.now = s.now.Add(time.Minute)
	second := s.submitLeave(4)
	w := s.do(http.MethodPost, "/v1beta1/instances/"+second.ID+"/cancel", "employee@example.com", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Instances []*domain.Instance `json:"instances"`
	}

	w = s.do(http.MethodGet, "/v1beta1/instances?statuses=pending", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &resp)
	s.Require().Len(resp.Instances, 1)
	s.Equal(first.ID, resp.Instances[0].ID)

	w = s.do(http.MethodGet, "/v1beta1/instances?requester_id=employee@example.com&size=1&offset=1", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &resp)
	s.Require().Len(resp.Instances, 1)
	s.Equal(second.ID, resp.Instances[0].ID)

	w = s.do(http.MethodGet, "/v1beta1/instances?size=abc", "", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestInstanceEvents() {
	s.setupLeaveFlow()
	instance := s.submitLeave(2)

	s.Eventually(func() bool {
		w := s.do(http.MethodGet, "/v1beta1/instances/"+instance.ID+"/events", "", nil)
		if w.Code != http.StatusOK {
			return false
		}
		var resp struct {
			Events []*domain.Event `json:"events"`
		}
		s.decode(w, &resp)
		return len(resp.Events) == 1 &&
			resp.Events[0].Type == approval.AuditKeySubmit &&
			resp.Events[0].Actor == "employee@example.com"
	}, time.Second, 10*time.Millisecond)
}

func (s *HandlerTestSuite) TestTemplates() {
	s.setupLeaveFlow()

	s.Run("should reject an invalid template", func() {
		w := s.do(http.MethodPost, "/v1beta1/templates", "admin@example.com", map[string]interface{}{
			"request_type": "leave",
			"name":         "broken",
			"levels":       []map[string]interface{}{{"order": 2, "approver_role": "manager"}, {"order": 1, "approver_role": "hr"}},
		})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("should conflict on duplicate id", func() {
		w := s.do(http.MethodPost, "/v1beta1/templates", "admin@example.com", map[string]interface{}{
			"id":           "leave-flow",
			"request_type": "leave",
			"name":         "again",
			"levels":       []map[string]interface{}{{"order": 1, "approver_role": "manager"}},
		})
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("should version updates and keep the previous version readable", func() {
		w := s.do(http.MethodPut, "/v1beta1/templates/leave-flow", "admin@example.com", map[string]interface{}{
			"name": "Leave approval v2",
		})
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Template *domain.FlowTemplate `json:"template"`
		}
		w = s.do(http.MethodGet, "/v1beta1/templates/leave-flow", "", nil)
		s.Require().Equal(http.StatusOK, w.Code)
		s.decode(w, &resp)
		s.Equal(uint(2), resp.Template.Version)
		s.Equal("Leave approval v2", resp.Template.Name)
		s.Equal("admin@example.com", resp.Template.CreatedBy)

		w = s.do(http.MethodGet, "/v1beta1/templates/leave-flow?version=1", "", nil)
		s.Require().Equal(http.StatusOK, w.Code)
		s.decode(w, &resp)
		s.Equal("Leave approval", resp.Template.Name)
	})

	s.Run("should toggle and filter by activity", func() {
		w := s.do(http.MethodPatch, "/v1beta1/templates/leave-flow/active", "admin@example.com", map[string]interface{}{
			"is_active": false,
		})
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Templates []*domain.FlowTemplate `json:"templates"`
		}
		w = s.do(http.MethodGet, "/v1beta1/templates?is_active=true", "", nil)
		s.Require().Equal(http.StatusOK, w.Code)
		s.decode(w, &resp)
		s.Empty(resp.Templates)

		w = s.do(http.MethodGet, "/v1beta1/templates?request_type=leave", "", nil)
		s.Require().Equal(http.StatusOK, w.Code)
		s.decode(w, &resp)
		s.Len(resp.Templates, 1)

		w = s.do(http.MethodPatch, "/v1beta1/templates/leave-flow/active", "admin@example.com", map[string]interface{}{})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("should delete and then report not found", func() {
		w := s.do(http.MethodDelete, "/v1beta1/templates/leave-flow", "admin@example.com", nil)
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		w = s.do(http.MethodGet, "/v1beta1/templates/leave-flow", "", nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *HandlerTestSuite) TestDeleteTemplateInUse() {
	s.setupLeaveFlow()
	s.submitLeave(1)

	w := s.do(http.MethodDelete, "/v1beta1/templates/leave-flow", "admin@example.com", nil)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestBackupApprovers() {
	s.setupLeaveFlow()

	w := s.do(http.MethodPost, "/v1beta1/backup-approvers", "manager@example.com", map[string]interface{}{
		"primary_approver_id": "manager@example.com",
		"backup_approver_id":  "deputy@example.com",
		"valid_from":          s.now.Add(-time.Hour),
		"valid_to":            s.now.Add(24 * time.Hour),
		"reason":              "vacation",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		BackupApprover *domain.BackupApprover `json:"backup_approver"`
	}
	s.decode(w, &created)
	s.NotEmpty(created.BackupApprover.ID)
	s.Equal("manager@example.com", created.BackupApprover.CreatedBy)

	w = s.do(http.MethodGet, "/v1beta1/roles/manager/resolution?at="+s.now.Format(time.RFC3339), "", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resolution map[string]interface{}
	s.decode(w, &resolution)
	s.Equal("deputy@example.com", resolution["user_id"])

	instance := s.submitLeave(1)
	s.Equal("deputy@example.com", instance.CurrentAssigneeID)

	w = s.do(http.MethodGet, "/v1beta1/backup-approvers?primary_approver_ids=manager@example.com", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var list struct {
		BackupApprovers []*domain.BackupApprover `json:"backup_approvers"`
	}
	s.decode(w, &list)
	s.Len(list.BackupApprovers, 1)

	w = s.do(http.MethodDelete, "/v1beta1/backup-approvers/"+created.BackupApprover.ID, "manager@example.com", nil)
	s.Equal(http.StatusNoContent, w.Code)
	w = s.do(http.MethodDelete, "/v1beta1/backup-approvers/"+created.BackupApprover.ID, "manager@example.com", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/v1beta1/backup-approvers", "manager@example.com", map[string]interface{}{
		"primary_approver_id": "manager@example.com",
		"backup_approver_id":  "deputy@example.com",
		"valid_from":          s.now,
		"valid_to":            s.now.Add(-time.Hour),
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestRoleMappings() {
	w := s.do(http.MethodGet, "/v1beta1/roles/finance", "", nil)
	s.Equal(http.StatusNotFound, w.Code)

	s.setupLeaveFlow()
	w = s.do(http.MethodGet, "/v1beta1/roles", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp struct {
		Roles []*domain.RoleMapping `json:"roles"`
	}
	s.decode(w, &resp)
	s.Len(resp.Roles, 2)

	w = s.do(http.MethodGet, "/v1beta1/roles/finance/resolution", "", nil)
	s.Equal(http.StatusUnprocessableEntity, w.Code)
}
