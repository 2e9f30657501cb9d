package model

import (
	"encoding/json"
	"time"

	"github.com/goto/salt/audit"
	"gorm.io/datatypes"
)

// AuditLog database model
type AuditLog struct {
	Timestamp time.Time `gorm:"index"`
	Action    string    `gorm:"index"`
	Actor     string
	Data      datatypes.JSON
	Metadata  datatypes.JSON
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

func (m *AuditLog) FromDomain(l *audit.Log) error {
	data, err := json.Marshal(l.Data)
	if err != nil {
		return err
	}
	metadata, err := json.Marshal(l.Metadata)
	if err != nil {
		return err
	}

	m.Timestamp = l.Timestamp
	m.Action = l.Action
	m.Actor = l.Actor
	m.Data = data
	m.Metadata = metadata
	return nil
}

func (m *AuditLog) ToDomain() (*audit.Log, error) {
	l := &audit.Log{
		Timestamp: m.Timestamp,
		Action:    m.Action,
		Actor:     m.Actor,
	}

	if len(m.Data) > 0 {
		data := make(map[string]interface{})
		if err := json.Unmarshal(m.Data, &data); err != nil {
			return nil, err
		}
		l.Data = data
	}
	if len(m.Metadata) > 0 {
		var metadata interface{}
		if err := json.Unmarshal(m.Metadata, &metadata); err != nil {
			return nil, err
		}
		l.Metadata = metadata
	}
	return l, nil
}
