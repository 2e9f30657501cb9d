package v1beta1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/goto/approvals/domain"
)

type submitRequestBody struct {
	RequestType    string                 `json:"request_type" binding:"required"`
	RequesterID    string                 `json:"requester_id"`
	Department     string                 `json:"department"`
	Location       string                 `json:"location"`
	RequesterRoles []string               `json:"requester_roles"`
	Attributes     map[string]interface{} `json:"attributes"`
}

type decisionBody struct {
	Action  string `json:"action" binding:"required"`
	Comment string `json:"comment"`
}

type cancelBody struct {
	Reason string `json:"reason"`
}

// SubmitRequest starts an approval instance. The requester defaults to the authenticated user.
func (s *Server) SubmitRequest(c *gin.Context) {
	user, err := s.getUser(c)
	if err != nil {
		s.unauthenticated(c, err)
		return
	}

	var body submitRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.invalidArgument(c, "invalid request body: %v", err)
		return
	}
	if body.RequesterID == "" {
		body.RequesterID = user
	}

	instance, err := s.approvalService.SubmitRequest(c.Request.Context(), body.RequestType, domain.RequestContext{
		RequesterID:    body.RequesterID,
		Department:     body.Department,
		Location:       body.Location,
		RequesterRoles: body.RequesterRoles,
		Attributes:     body.Attributes,
	})
	if err != nil {
		s.handleError(c, err, "submit request")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"instance": instance})
}

func (s *Server) GetInstance(c *gin.Context) {
	instance, err := s.approvalService.GetInstance(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.handleError(c, err, "get instance")
		return
	}
	c.JSON(http.StatusOK, gin.H{"instance": instance})
}

func (s *Server) ListInstances(c *gin.Context) {
	size, err := queryInt(c, "size")
	if err != nil {
		s.invalidArgument(c, "invalid size: %v", err)
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		s.invalidArgument(c, "invalid offset: %v", err)
		return
	}

	instances, err := s.approvalService.ListInstances(c.Request.Context(), domain.ListInstancesFilter{
		Statuses:     parseCommaSeparatedValues(c.QueryArray("statuses")),
		AssigneeID:   c.Query("assignee_id"),
		RequesterID:  c.Query("requester_id"),
		TemplateID:   c.Query("template_id"),
		RequestTypes: parseCommaSeparatedValues(c.QueryArray("request_types")),
		Size:         size,
		Offset:       offset,
	})
	if err != nil {
		s.handleError(c, err, "list instances")
		return
	}
	c.JSON(http.StatusOK, gin.H{"instances": instances})
}

// ListUserApprovals returns the pending instances waiting on the authenticated user
func (s *Server) ListUserApprovals(c *gin.Context) {
	user, err := s.getUser(c)
	if err != nil {
		s.unauthenticated(c, err)
		return
	}

	instances, err := s.approvalService.ListPendingFor(c.Request.Context(), user)
	if err != nil {
		s.handleError(c, err, "list user approvals")
		return
	}
	c.JSON(http.StatusOK, gin.H{"instances": instances})
}

func (s *Server) DecideInstance(c *gin.Context) {
	user, err := s.getUser(c)
	if err != nil {
		s.unauthenticated(c, err)
		return
	}

	var body decisionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.invalidArgument(c, "invalid request body: %v", err)
		return
	}

	instance, err := s.approvalService.Decide(c.Request.Context(), c.Param("id"), user, body.Action, body.Comment)
	if err != nil {
		s.handleError(c, err, "decide instance")
		return
	}
	c.JSON(http.StatusOK, gin.H{"instance": instance})
}

func (s *Server) CancelInstance(c *gin.Context) {
	user, err := s.getUser(c)
	if err != nil {
		s.unauthenticated(c, err)
		return
	}

	var body cancelBody
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			s.invalidArgument(c, "invalid request body: %v", err)
			return
		}
	}

	instance, err := s.approvalService.Cancel(c.Request.Context(), c.Param("id"), user, body.Reason)
	if err != nil {
		s.handleError(c, err, "cancel instance")
		return
	}
	c.JSON(http.StatusOK, gin.H{"instance": instance})
}

func (s *Server) ListInstanceEvents(c *gin.Context) {
	events, err := s.eventService.List(c.Request.Context(), &domain.ListEventsFilter{
		Types:      parseCommaSeparatedValues(c.QueryArray("types")),
		ParentType: domain.EventParentTypeInstance,
		ParentID:   c.Param("id"),
	})
	if err != nil {
		s.handleError(c, err, "list instance events")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func queryInt(c *gin.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
