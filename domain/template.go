package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/goto/approvals/pkg/slices"
)

// Level is one ordered step of a flow template
type Level struct {
	Order        int    `json:"order" yaml:"order" validate:"required,min=1"`
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	ApproverRole string `json:"approver_role" yaml:"approver_role" validate:"required"`
	Condition    string `json:"condition,omitempty" yaml:"condition,omitempty"`
	Mandatory    bool   `json:"mandatory" yaml:"mandatory"`
}

// IsApplicable tells whether the level has to be assigned for the given vars.
// Only a non-mandatory level whose condition does not hold is skipped.
func (l *Level) IsApplicable(vars map[string]interface{}) (bool, error) {
	ok, err := EvaluateCondition(l.Condition, vars)
	if err != nil {
		return false, fmt.Errorf("level %d: %w", l.Order, err)
	}
	return ok || l.Mandatory, nil
}

type AutoApprovalRule struct {
	Enabled    bool     `json:"enabled" yaml:"enabled"`
	Conditions []string `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// IsSatisfied returns true only when the rule is enabled and every condition holds
func (r *AutoApprovalRule) IsSatisfied(vars map[string]interface{}) (bool, error) {
	if r == nil || !r.Enabled || len(r.Conditions) == 0 {
		return false, nil
	}

	for _, c := range r.Conditions {
		ok, err := EvaluateCondition(c, vars)
		if err != nil {
			return false, fmt.Errorf("auto approval: %w", err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

type EscalationRule struct {
	Enabled        bool     `json:"enabled" yaml:"enabled"`
	AfterDuration  string   `json:"after_duration,omitempty" yaml:"after_duration,omitempty"`
	EscalateToRole string   `json:"escalate_to_role,omitempty" yaml:"escalate_to_role,omitempty"`
	NotifyChannels []string `json:"notify_channels,omitempty" yaml:"notify_channels,omitempty"`
}

func (r *EscalationRule) IsActive() bool {
	return r != nil && r.Enabled
}

func (r *EscalationRule) Duration() (time.Duration, error) {
	d, err := time.ParseDuration(r.AfterDuration)
	if err != nil {
		return 0, fmt.Errorf("parsing escalation duration %q: %w", r.AfterDuration, err)
	}
	return d, nil
}

// Applicability narrows the requests a template applies to. Empty filters match everything.
type Applicability struct {
	Departments []string `json:"departments,omitempty" yaml:"departments,omitempty"`
	Locations   []string `json:"locations,omitempty" yaml:"locations,omitempty"`
	Roles       []string `json:"roles,omitempty" yaml:"roles,omitempty"`
}

func (a *Applicability) Matches(rc RequestContext) bool {
	if a == nil {
		return true
	}
	if len(a.Departments) > 0 && !slices.GenericsSliceContainsOne(a.Departments, rc.Department) {
		return false
	}
	if len(a.Locations) > 0 && !slices.GenericsSliceContainsOne(a.Locations, rc.Location) {
		return false
	}
	if len(a.Roles) > 0 && !slices.GenericsSliceContainsOne(a.Roles, rc.RequesterRoles...) {
		return false
	}
	return true
}

// FlowTemplate is a versioned definition of how one request type gets approved
type FlowTemplate struct {
	ID            string            `json:"id" yaml:"id" validate:"required"`
	Version       uint              `json:"version" yaml:"version"`
	RequestType   string            `json:"request_type" yaml:"request_type" validate:"required,oneof=leave attendance expense asset exit payroll"`
	Name          string            `json:"name" yaml:"name" validate:"required"`
	Description   string            `json:"description,omitempty" yaml:"description,omitempty"`
	Levels        []*Level          `json:"levels" yaml:"levels" validate:"required,min=1,dive"`
	AutoApproval  *AutoApprovalRule `json:"auto_approval,omitempty" yaml:"auto_approval,omitempty"`
	Escalation    *EscalationRule   `json:"escalation,omitempty" yaml:"escalation,omitempty"`
	Applicability *Applicability    `json:"applicability,omitempty" yaml:"applicability,omitempty"`
	IsActive      bool              `json:"is_active" yaml:"is_active"`
	CreatedBy     string            `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	CreatedAt     time.Time         `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt     time.Time         `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Validate checks the semantic rules struct tags can not express
func (t *FlowTemplate) Validate() error {
	if len(t.Levels) == 0 {
		return fmt.Errorf("%w: at least one level is required", ErrInvalidTemplate)
	}

	prevOrder := 0
	for i, l := range t.Levels {
		if l == nil {
			return fmt.Errorf("%w: level at index %d is empty", ErrInvalidTemplate, i)
		}
		if l.Order <= prevOrder {
			return fmt.Errorf("%w: level orders must start at 1 and be strictly increasing, got %d after %d", ErrInvalidTemplate, l.Order, prevOrder)
		}
		prevOrder = l.Order

		if strings.TrimSpace(l.ApproverRole) == "" {
			return fmt.Errorf("%w: level %d has no approver role", ErrInvalidTemplate, l.Order)
		}
		if strings.TrimSpace(l.Condition) != "" {
			if err := ValidateCondition(l.Condition); err != nil {
				return fmt.Errorf("level %d: %w", l.Order, err)
			}
		}
	}

	if t.AutoApproval != nil && t.AutoApproval.Enabled {
		if len(t.AutoApproval.Conditions) == 0 {
			return fmt.Errorf("%w: enabled auto approval requires at least one condition", ErrInvalidTemplate)
		}
		for _, c := range t.AutoApproval.Conditions {
			if err := ValidateCondition(c); err != nil {
				return fmt.Errorf("auto approval: %w", err)
			}
		}
	}

	if t.Escalation.IsActive() {
		d, err := t.Escalation.Duration()
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: escalation duration must be positive", ErrInvalidTemplate)
		}
		if strings.TrimSpace(t.Escalation.EscalateToRole) == "" {
			return fmt.Errorf("%w: enabled escalation requires escalate_to_role", ErrInvalidTemplate)
		}
	}
	if t.Escalation != nil {
		for _, c := range t.Escalation.NotifyChannels {
			if !IsNotificationChannel(c) {
				return fmt.Errorf("%w: unknown escalation notify channel %q", ErrInvalidTemplate, c)
			}
		}
	}

	return nil
}

// Matches tells whether an incoming request can be routed through this template
func (t *FlowTemplate) Matches(rc RequestContext) bool {
	return t.IsActive && t.RequestType == rc.RequestType && t.Applicability.Matches(rc)
}

// Snapshot copies everything an instance needs so later edits never reach it
func (t *FlowTemplate) Snapshot() *TemplateSnapshot {
	s := &TemplateSnapshot{
		Name:        t.Name,
		RequestType: t.RequestType,
		Version:     t.Version,
		Levels:      make([]*Level, 0, len(t.Levels)),
	}
	for _, l := range t.Levels {
		level := *l
		s.Levels = append(s.Levels, &level)
	}
	if t.Escalation != nil {
		s.Escalation = t.Escalation.clone()
	}
	return s
}

func (t *FlowTemplate) Clone() *FlowTemplate {
	clone := *t
	clone.Levels = make([]*Level, 0, len(t.Levels))
	for _, l := range t.Levels {
		level := *l
		clone.Levels = append(clone.Levels, &level)
	}
	if t.AutoApproval != nil {
		rule := *t.AutoApproval
		rule.Conditions = copyStrings(t.AutoApproval.Conditions)
		clone.AutoApproval = &rule
	}
	if t.Escalation != nil {
		clone.Escalation = t.Escalation.clone()
	}
	if t.Applicability != nil {
		clone.Applicability = &Applicability{
			Departments: copyStrings(t.Applicability.Departments),
			Locations:   copyStrings(t.Applicability.Locations),
			Roles:       copyStrings(t.Applicability.Roles),
		}
	}
	return &clone
}

func (r *EscalationRule) clone() *EscalationRule {
	rule := *r
	rule.NotifyChannels = copyStrings(r.NotifyChannels)
	return &rule
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

// TemplateSnapshot is the immutable copy of a template version embedded in an instance
type TemplateSnapshot struct {
	Name        string          `json:"name" yaml:"name"`
	RequestType string          `json:"request_type" yaml:"request_type"`
	Version     uint            `json:"version" yaml:"version"`
	Levels      []*Level        `json:"levels" yaml:"levels"`
	Escalation  *EscalationRule `json:"escalation,omitempty" yaml:"escalation,omitempty"`
}

type ListFlowTemplatesFilter struct {
	IDs         []string `mapstructure:"ids" validate:"omitempty,min=1"`
	RequestType string   `mapstructure:"request_type" validate:"omitempty"`
	IsActive    *bool    `mapstructure:"is_active" validate:"omitempty"`
}
