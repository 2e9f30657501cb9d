package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/goto/approvals/domain"
)

// FlowTemplate database model, one row per template version
type FlowTemplate struct {
	ID            string `gorm:"primaryKey"`
	Version       uint   `gorm:"primaryKey"`
	RequestType   string `gorm:"index"`
	Name          string
	Description   string
	Levels        datatypes.JSON
	AutoApproval  datatypes.JSON
	Escalation    datatypes.JSON
	Applicability datatypes.JSON
	IsActive      bool
	CreatedBy     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FlowTemplate) TableName() string {
	return "flow_templates"
}

// FromDomain transforms *domain.FlowTemplate values into the model
func (m *FlowTemplate) FromDomain(t *domain.FlowTemplate) error {
	levels, err := json.Marshal(t.Levels)
	if err != nil {
		return err
	}
	autoApproval, err := marshalOptional(t.AutoApproval, t.AutoApproval == nil)
	if err != nil {
		return err
	}
	escalation, err := marshalOptional(t.Escalation, t.Escalation == nil)
	if err != nil {
		return err
	}
	applicability, err := marshalOptional(t.Applicability, t.Applicability == nil)
	if err != nil {
		return err
	}

	m.ID = t.ID
	m.Version = t.Version
	m.RequestType = t.RequestType
	m.Name = t.Name
	m.Description = t.Description
	m.Levels = levels
	m.AutoApproval = autoApproval
	m.Escalation = escalation
	m.Applicability = applicability
	m.IsActive = t.IsActive
	m.CreatedBy = t.CreatedBy
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt

	return nil
}

// ToDomain transforms model into *domain.FlowTemplate
func (m *FlowTemplate) ToDomain() (*domain.FlowTemplate, error) {
	var levels []*domain.Level
	if err := json.Unmarshal(m.Levels, &levels); err != nil {
		return nil, err
	}

	var autoApproval *domain.AutoApprovalRule
	if err := unmarshalOptional(m.AutoApproval, &autoApproval); err != nil {
		return nil, err
	}
	var escalation *domain.EscalationRule
	if err := unmarshalOptional(m.Escalation, &escalation); err != nil {
		return nil, err
	}
	var applicability *domain.Applicability
	if err := unmarshalOptional(m.Applicability, &applicability); err != nil {
		return nil, err
	}

	return &domain.FlowTemplate{
		ID:            m.ID,
		Version:       m.Version,
		RequestType:   m.RequestType,
		Name:          m.Name,
		Description:   m.Description,
		Levels:        levels,
		AutoApproval:  autoApproval,
		Escalation:    escalation,
		Applicability: applicability,
		IsActive:      m.IsActive,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

func marshalOptional(v interface{}, isNil bool) (datatypes.JSON, error) {
	if isNil {
		return nil, nil
	}
	return json.Marshal(v)
}

func unmarshalOptional(data datatypes.JSON, v interface{}) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, v)
}
