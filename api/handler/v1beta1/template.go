package v1beta1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/goto/approvals/domain"
)

type toggleTemplateBody struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (s *Server) ListTemplates(c *gin.Context) {
	filter := domain.ListFlowTemplatesFilter{
		IDs:         parseCommaSeparatedValues(c.QueryArray("ids")),
		RequestType: c.Query("request_type"),
	}
	if v := c.Query("is_active"); v != "" {
		isActive, err := strconv.ParseBool(v)
		if err != nil {
			s.invalidArgument(c, "invalid is_active: %v", err)
			return
		}
		filter.IsActive = &isActive
	}

	templates, err := s.templateService.Find(c.Request.Context(), filter)
	if err != nil {
		s.handleError(c, err, "list templates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (s *Server) CreateTemplate(c *gin.Context) {
	user, err := s.getUser(c)
	if err != nil {
		s.unauthenticated(c, err)
		return
	}

	var t domain.FlowTemplate
	if err := c.ShouldBindJSON(&t); err != nil {
		s.invalidArgument(c, "invalid request body: %v", err)
		return
	}
	t.CreatedBy = user

	if err := s.templateService.Create(c.Request.Context(), &t); err != nil {
		s.handleError(c, err, "create template")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"template": t})
}

// GetTemplate returns the latest version unless the version query parameter names an older one
func (s *Server) GetTemplate(c *gin.Context) {
	var version uint64
	if v := c.Query("version"); v != "" {
		var err error
		if version, err = strconv.ParseUint(v, 10, 32); err != nil {
			s.invalidArgument(c, "invalid version: %v", err)
			return
		}
	}

	t, err := s.templateService.GetOne(c.Request.Context(), c.Param("id"), uint(version))
	if err != nil {
		s.handleError(c, err, "get template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": t})
}

func (s *Server) UpdateTemplate(c *gin.Context) {
	var t domain.FlowTemplate
	if err := c.ShouldBindJSON(&t); err != nil {
		s.invalidArgument(c, "invalid request body: %v", err)
		return
	}
	t.ID = c.Param("id")

	if err := s.templateService.Update(c.Request.Context(), &t); err != nil {
		s.handleError(c, err, "update template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": t})
}

func (s *Server) ToggleTemplate(c *gin.Context) {
	var body toggleTemplateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.invalidArgument(c, "invalid request body: %v", err)
		return
	}

	t, err := s.templateService.ToggleActive(c.Request.Context(), c.Param("id"), *body.IsActive)
	if err != nil {
		s.handleError(c, err, "toggle template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": t})
}

func (s *Server) DeleteTemplate(c *gin.Context) {
	if err := s.templateService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.handleError(c, err, "delete template")
		return
	}
	c.Status(http.StatusNoContent)
}
