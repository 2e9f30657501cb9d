package v1beta1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goto/approvals/domain"
)

type roleMappingBody struct {
	UserIDs []string `json:"user_ids"`
}

func (s *Server) ListBackupApprovers(c *gin.Context) {
	filter := domain.ListBackupApproversFilter{
		PrimaryApproverIDs: parseCommaSeparatedValues(c.QueryArray("primary_approver_ids")),
		BackupApproverID:   c.Query("backup_approver_id"),
	}
	if v := c.Query("active_at"); v != "" {
		at, err := time.Parse(time.RFC3339, v)
		if err != nil {
			s.invalidArgument(c, "invalid active_at: %v", err)
			return
		}
		filter.ActiveAt = &at
	}

	backups, err := s.delegationService.ListBackupApprovers(c.Request.Context(), filter)
	if err != nil {
		s.handleError(c, err, "list backup approvers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"backup_approvers": backups})
}

func (s *Server) CreateBackupApprover(c *gin.Context) {
	user, err := s.getUser(c)
	if err != nil {
		s.unauthenticated(c, err)
		return
	}

	var b domain.BackupApprover
	if err := c.ShouldBindJSON(&b); err != nil {
		s.invalidArgument(c, "invalid request body: %v", err)
		return
	}
	b.CreatedBy = user

	if err := s.delegationService.AddBackupApprover(c.Request.Context(), &b); err != nil {
		s.handleError(c, err, "create backup approver")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"backup_approver": b})
}

func (s *Server) DeleteBackupApprover(c *gin.Context) {
	if err := s.delegationService.RemoveBackupApprover(c.Request.Context(), c.Param("id")); err != nil {
		s.handleError(c, err, "delete backup approver")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) ListRoleMappings(c *gin.Context) {
	mappings, err := s.delegationService.ListRoleMappings(c.Request.Context())
	if err != nil {
		s.handleError(c, err, "list role mappings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": mappings})
}

func (s *Server) GetRoleMapping(c *gin.Context) {
	m, err := s.delegationService.GetRoleMapping(c.Request.Context(), c.Param("role"))
	if err != nil {
		s.handleError(c, err, "get role mapping")
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": m})
}

func (s *Server) UpdateRoleMapping(c *gin.Context) {
	var body roleMappingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.invalidArgument(c, "invalid request body: %v", err)
		return
	}

	m := &domain.RoleMapping{Role: c.Param("role"), UserIDs: body.UserIDs}
	if err := s.delegationService.UpdateRoleMapping(c.Request.Context(), m); err != nil {
		s.handleError(c, err, "update role mapping")
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": m})
}

// ResolveRole tells who currently acts for a role, backups included
func (s *Server) ResolveRole(c *gin.Context) {
	at := time.Now()
	if v := c.Query("at"); v != "" {
		var err error
		if at, err = time.Parse(time.RFC3339, v); err != nil {
			s.invalidArgument(c, "invalid at: %v", err)
			return
		}
	}

	userID, err := s.delegationService.Resolve(c.Request.Context(), c.Param("role"), at)
	if err != nil {
		s.handleError(c, err, "resolve role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": c.Param("role"), "user_id": userID, "at": at})
}
