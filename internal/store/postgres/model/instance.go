package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/goto/approvals/domain"
)

// Instance database model
type Instance struct {
	ID                string `gorm:"primaryKey"`
	TemplateID        string `gorm:"index"`
	TemplateVersion   uint
	Snapshot          datatypes.JSON
	Context           datatypes.JSON
	RequestType       string
	RequesterID       string
	CurrentLevelIndex int
	Decisions         datatypes.JSON
	Status            string `gorm:"index"`
	CurrentAssigneeID string
	LevelEnteredAt    *time.Time
	EscalatedLevels   datatypes.JSON
	CancelledBy       string
	CancelReason      string
	Revision          uint

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Instance) TableName() string {
	return "instances"
}

// FromDomain transforms *domain.Instance values into the model
func (m *Instance) FromDomain(i *domain.Instance) error {
	snapshot, err := json.Marshal(i.Snapshot)
	if err != nil {
		return err
	}
	rc, err := json.Marshal(i.Context)
	if err != nil {
		return err
	}
	decisions, err := json.Marshal(i.Decisions)
	if err != nil {
		return err
	}
	escalatedLevels, err := json.Marshal(i.EscalatedLevels)
	if err != nil {
		return err
	}

	var templateVersion uint
	if i.Snapshot != nil {
		templateVersion = i.Snapshot.Version
	}

	m.ID = i.ID
	m.TemplateID = i.TemplateID
	m.TemplateVersion = templateVersion
	m.Snapshot = snapshot
	m.Context = rc
	m.RequestType = i.Context.RequestType
	m.RequesterID = i.Context.RequesterID
	m.CurrentLevelIndex = i.CurrentLevelIndex
	m.Decisions = decisions
	m.Status = i.Status
	m.CurrentAssigneeID = i.CurrentAssigneeID
	m.LevelEnteredAt = i.LevelEnteredAt
	m.EscalatedLevels = escalatedLevels
	m.CancelledBy = i.CancelledBy
	m.CancelReason = i.CancelReason
	m.Revision = i.Revision
	m.CreatedAt = i.CreatedAt
	m.UpdatedAt = i.UpdatedAt

	return nil
}

// ToDomain transforms model into *domain.Instance
func (m *Instance) ToDomain() (*domain.Instance, error) {
	i := &domain.Instance{
		ID:                m.ID,
		TemplateID:        m.TemplateID,
		CurrentLevelIndex: m.CurrentLevelIndex,
		Status:            m.Status,
		CurrentAssigneeID: m.CurrentAssigneeID,
		LevelEnteredAt:    m.LevelEnteredAt,
		CancelledBy:       m.CancelledBy,
		CancelReason:      m.CancelReason,
		Revision:          m.Revision,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}

	if err := unmarshalOptional(m.Snapshot, &i.Snapshot); err != nil {
		return nil, err
	}
	if err := unmarshalOptional(m.Context, &i.Context); err != nil {
		return nil, err
	}
	if err := unmarshalOptional(m.Decisions, &i.Decisions); err != nil {
		return nil, err
	}
	if err := unmarshalOptional(m.EscalatedLevels, &i.EscalatedLevels); err != nil {
		return nil, err
	}

	return i, nil
}

// UpdateColumns lists the mutable columns of an instance
func (m *Instance) UpdateColumns() map[string]interface{} {
	return map[string]interface{}{
		"current_level_index": m.CurrentLevelIndex,
		"decisions":           m.Decisions,
		"status":              m.Status,
		"current_assignee_id": m.CurrentAssigneeID,
		"level_entered_at":    m.LevelEnteredAt,
		"escalated_levels":    m.EscalatedLevels,
		"cancelled_by":        m.CancelledBy,
		"cancel_reason":       m.CancelReason,
		"revision":            m.Revision,
		"updated_at":          m.UpdatedAt,
	}
}
