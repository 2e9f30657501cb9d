package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/goto/approvals/domain"
)

// BackupApprover database model
type BackupApprover struct {
	ID                string `gorm:"primaryKey"`
	PrimaryApproverID string `gorm:"index"`
	BackupApproverID  string
	ValidFrom         time.Time
	ValidTo           time.Time
	Reason            string
	CreatedBy         string
	CreatedAt         time.Time
}

func (BackupApprover) TableName() string {
	return "backup_approvers"
}

func (m *BackupApprover) FromDomain(b *domain.BackupApprover) {
	m.ID = b.ID
	m.PrimaryApproverID = b.PrimaryApproverID
	m.BackupApproverID = b.BackupApproverID
	m.ValidFrom = b.ValidFrom
	m.ValidTo = b.ValidTo
	m.Reason = b.Reason
	m.CreatedBy = b.CreatedBy
	m.CreatedAt = b.CreatedAt
}

func (m *BackupApprover) ToDomain() *domain.BackupApprover {
	return &domain.BackupApprover{
		ID:                m.ID,
		PrimaryApproverID: m.PrimaryApproverID,
		BackupApproverID:  m.BackupApproverID,
		ValidFrom:         m.ValidFrom,
		ValidTo:           m.ValidTo,
		Reason:            m.Reason,
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
	}
}

// RoleMapping database model
type RoleMapping struct {
	Role      string         `gorm:"primaryKey"`
	UserIDs   pq.StringArray `gorm:"type:text[]"`
	UpdatedAt time.Time
}

func (RoleMapping) TableName() string {
	return "role_mappings"
}

func (m *RoleMapping) FromDomain(r *domain.RoleMapping) {
	m.Role = r.Role
	m.UserIDs = pq.StringArray(r.UserIDs)
	m.UpdatedAt = r.UpdatedAt
}

func (m *RoleMapping) ToDomain() *domain.RoleMapping {
	return &domain.RoleMapping{
		Role:      m.Role,
		UserIDs:   []string(m.UserIDs),
		UpdatedAt: m.UpdatedAt,
	}
}
