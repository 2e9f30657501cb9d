package v1beta1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/goto/approvals/core/approval"
	"github.com/goto/approvals/core/delegation"
	"github.com/goto/approvals/core/template"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/log"
)

//go:generate mockery --name=templateService --exported --with-expecter
type templateService interface {
	Create(context.Context, *domain.FlowTemplate) error
	Update(context.Context, *domain.FlowTemplate) error
	ToggleActive(ctx context.Context, id string, isActive bool) (*domain.FlowTemplate, error)
	GetOne(ctx context.Context, id string, version uint) (*domain.FlowTemplate, error)
	Find(context.Context, domain.ListFlowTemplatesFilter) ([]*domain.FlowTemplate, error)
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name=approvalService --exported --with-expecter
type approvalService interface {
	SubmitRequest(ctx context.Context, requestType string, rc domain.RequestContext) (*domain.Instance, error)
	Decide(ctx context.Context, id, actorID, action, comment string) (*domain.Instance, error)
	Cancel(ctx context.Context, id, actorID, reason string) (*domain.Instance, error)
	GetInstance(ctx context.Context, id string) (*domain.Instance, error)
	ListInstances(context.Context, domain.ListInstancesFilter) ([]*domain.Instance, error)
	ListPendingFor(ctx context.Context, userID string) ([]*domain.Instance, error)
}

//go:generate mockery --name=delegationService --exported --with-expecter
type delegationService interface {
	AddBackupApprover(context.Context, *domain.BackupApprover) error
	RemoveBackupApprover(ctx context.Context, id string) error
	ListBackupApprovers(context.Context, domain.ListBackupApproversFilter) ([]*domain.BackupApprover, error)
	UpdateRoleMapping(context.Context, *domain.RoleMapping) error
	GetRoleMapping(ctx context.Context, role string) (*domain.RoleMapping, error)
	ListRoleMappings(context.Context) ([]*domain.RoleMapping, error)
	Resolve(ctx context.Context, role string, at time.Time) (string, error)
}

//go:generate mockery --name=eventService --exported --with-expecter
type eventService interface {
	List(context.Context, *domain.ListEventsFilter) ([]*domain.Event, error)
}

type Server struct {
	templateService   templateService
	approvalService   approvalService
	delegationService delegationService
	eventService      eventService
	logger            log.Logger

	authenticatedUserContextKey interface{}
}

func NewServer(
	templateService templateService,
	approvalService approvalService,
	delegationService delegationService,
	eventService eventService,
	logger log.Logger,
	authenticatedUserContextKey interface{},
) *Server {
	return &Server{
		templateService:             templateService,
		approvalService:             approvalService,
		delegationService:           delegationService,
		eventService:                eventService,
		logger:                      logger,
		authenticatedUserContextKey: authenticatedUserContextKey,
	}
}

func (s *Server) RegisterRoutes(r gin.IRouter) {
	v1 := r.Group("/v1beta1")

	v1.POST("/requests", s.SubmitRequest)
	v1.GET("/instances", s.ListInstances)
	v1.GET("/instances/:id", s.GetInstance)
	v1.GET("/instances/:id/events", s.ListInstanceEvents)
	v1.POST("/instances/:id/decisions", s.DecideInstance)
	v1.POST("/instances/:id/cancel", s.CancelInstance)
	v1.GET("/me/approvals", s.ListUserApprovals)

	v1.GET("/templates", s.ListTemplates)
	v1.POST("/templates", s.CreateTemplate)
	v1.GET("/templates/:id", s.GetTemplate)
	v1.PUT("/templates/:id", s.UpdateTemplate)
	v1.DELETE("/templates/:id", s.DeleteTemplate)
	v1.PATCH("/templates/:id/active", s.ToggleTemplate)

	v1.GET("/backup-approvers", s.ListBackupApprovers)
	v1.POST("/backup-approvers", s.CreateBackupApprover)
	v1.DELETE("/backup-approvers/:id", s.DeleteBackupApprover)

	v1.GET("/roles", s.ListRoleMappings)
	v1.GET("/roles/:role", s.GetRoleMapping)
	v1.PUT("/roles/:role", s.UpdateRoleMapping)
	v1.GET("/roles/:role/resolution", s.ResolveRole)
}

func (s *Server) getUser(c *gin.Context) (string, error) {
	if user, ok := c.Request.Context().Value(s.authenticatedUserContextKey).(string); ok && user != "" {
		return user, nil
	}
	return "", errors.New("unable to get authenticated user from context")
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) abort(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, errorResponse{
		Code:    http.StatusText(status),
		Message: err.Error(),
	})
}

func (s *Server) unauthenticated(c *gin.Context, err error) {
	s.abort(c, http.StatusUnauthorized, err)
}

func (s *Server) invalidArgument(c *gin.Context, format string, a ...interface{}) {
	s.abort(c, http.StatusBadRequest, fmt.Errorf(format, a...))
}

func (s *Server) internalError(c *gin.Context, format string, a ...interface{}) {
	err := fmt.Errorf(format, a...)
	s.logger.Error(c.Request.Context(), err.Error())
	s.abort(c, http.StatusInternalServerError, errors.New("internal server error"))
}

// handleError writes the response status matching a service error
func (s *Server) handleError(c *gin.Context, err error, op string) {
	var validationErrs validator.ValidationErrors
	switch {
	case
		errors.As(err, &validationErrs),
		errors.Is(err, domain.ErrInvalidTemplate),
		errors.Is(err, domain.ErrInvalidCondition),
		errors.Is(err, domain.ErrInvalidDecision),
		errors.Is(err, domain.ErrInvalidBackupRange),
		errors.Is(err, approval.ErrInvalidAction),
		errors.Is(err, approval.ErrInstanceIDEmptyParam),
		errors.Is(err, approval.ErrActorEmptyParam),
		errors.Is(err, template.ErrEmptyIDParam),
		errors.Is(err, delegation.ErrEmptyIDParam),
		errors.Is(err, delegation.ErrEmptyRoleParam):
		s.abort(c, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrUnauthorizedActor):
		s.abort(c, http.StatusForbidden, err)
	case
		errors.Is(err, template.ErrTemplateNotFound),
		errors.Is(err, approval.ErrInstanceNotFound),
		errors.Is(err, delegation.ErrBackupApproverNotFound),
		errors.Is(err, delegation.ErrRoleMappingNotFound):
		s.abort(c, http.StatusNotFound, err)
	case
		errors.Is(err, domain.ErrNotPending),
		errors.Is(err, domain.ErrStaleInstance),
		errors.Is(err, template.ErrTemplateAlreadyExists),
		errors.Is(err, template.ErrTemplateInUse):
		s.abort(c, http.StatusConflict, err)
	case errors.Is(err, domain.ErrConfiguration):
		s.abort(c, http.StatusUnprocessableEntity, err)
	default:
		s.internalError(c, "failed to %s: %v", op, err)
	}
}
