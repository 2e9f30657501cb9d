package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/goto/salt/audit"
)

const (
	EventParentTypeInstance = "instance"
	EventParentTypeTemplate = "template"
)

var eventParentIDKeys = map[string]string{
	EventParentTypeInstance: "instance_id",
	EventParentTypeTemplate: "template_id",
}

// EventParentIDKey returns the audit data key holding the id of a parent of the given type
func EventParentIDKey(parentType string) (string, bool) {
	key, ok := eventParentIDKeys[parentType]
	return key, ok
}

// Event is the audit trail entry of an instance or a template
type Event struct {
	ParentType string         `json:"parent_type"`
	ParentID   string         `json:"parent_id"`
	Timestamp  time.Time      `json:"timestamp"`
	Type       string         `json:"type"`
	Actor      string         `json:"actor"`
	Data       map[string]any `json:"data"`
}

func (e *Event) FromAuditLog(l *audit.Log) error {
	parentType := strings.Split(l.Action, ".")[0]
	idKey, ok := EventParentIDKey(parentType)
	if !ok {
		return fmt.Errorf("invalid parent type %q", parentType)
	}

	data, ok := l.Data.(map[string]any)
	if !ok {
		return fmt.Errorf("invalid data type %T", l.Data)
	}
	id, ok := data[idKey].(string)
	if !ok {
		return fmt.Errorf("invalid parent_id=%v for parent_type=%q", data[idKey], parentType)
	}

	e.ParentType = parentType
	e.ParentID = id
	e.Data = data
	e.Timestamp = l.Timestamp
	e.Type = l.Action
	e.Actor = l.Actor
	return nil
}

type ListEventsFilter struct {
	Types      []string
	ParentType string
	ParentID   string
}

type ListAuditLogFilter struct {
	Actions    []string
	ParentType string
	ParentID   string
}
