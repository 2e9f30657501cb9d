package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	InstanceStatusPending      = "pending"
	InstanceStatusApproved     = "approved"
	InstanceStatusRejected     = "rejected"
	InstanceStatusAutoApproved = "auto_approved"
	InstanceStatusCancelled    = "cancelled"

	DecisionApproved  = "approved"
	DecisionRejected  = "rejected"
	DecisionEscalated = "escalated"

	// NoCurrentLevel is the level index of a concluded instance
	NoCurrentLevel = -1
)

// ApproverResolver returns the user responsible for role at the given instant
type ApproverResolver func(role string, at time.Time) (string, error)

type Decision struct {
	LevelOrder int       `json:"level_order" yaml:"level_order"`
	ActorID    string    `json:"actor_id" yaml:"actor_id"`
	Decision   string    `json:"decision" yaml:"decision"`
	Comment    string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
}

// Instance is one run of a flow template against a submitted request
type Instance struct {
	ID                string            `json:"id" yaml:"id"`
	TemplateID        string            `json:"template_id" yaml:"template_id"`
	Snapshot          *TemplateSnapshot `json:"template_snapshot" yaml:"template_snapshot"`
	Context           RequestContext    `json:"context" yaml:"context"`
	CurrentLevelIndex int               `json:"current_level_index" yaml:"current_level_index"`
	Decisions         []*Decision       `json:"decisions" yaml:"decisions"`
	Status            string            `json:"status" yaml:"status"`
	CurrentAssigneeID string            `json:"current_assignee_id,omitempty" yaml:"current_assignee_id,omitempty"`
	LevelEnteredAt    *time.Time        `json:"level_entered_at,omitempty" yaml:"level_entered_at,omitempty"`
	EscalatedLevels   []int             `json:"escalated_levels,omitempty" yaml:"escalated_levels,omitempty"`
	CancelledBy       string            `json:"cancelled_by,omitempty" yaml:"cancelled_by,omitempty"`
	CancelReason      string            `json:"cancel_reason,omitempty" yaml:"cancel_reason,omitempty"`

	// Revision is bumped on every persisted change and used for optimistic concurrency
	Revision uint `json:"revision" yaml:"revision"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

func NewInstance(id string, t *FlowTemplate, rc RequestContext, now time.Time) *Instance {
	return &Instance{
		ID:                id,
		TemplateID:        t.ID,
		Snapshot:          t.Snapshot(),
		Context:           rc.Clone(),
		CurrentLevelIndex: NoCurrentLevel,
		Decisions:         []*Decision{},
		Status:            InstanceStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (i *Instance) IsTerminal() bool {
	return i.Status != InstanceStatusPending
}

// CurrentLevel returns nil once the instance is concluded
func (i *Instance) CurrentLevel() *Level {
	if i.Snapshot == nil || i.CurrentLevelIndex < 0 || i.CurrentLevelIndex >= len(i.Snapshot.Levels) {
		return nil
	}
	return i.Snapshot.Levels[i.CurrentLevelIndex]
}

func (i *Instance) IsAssignedTo(userID string) bool {
	return !i.IsTerminal() && userID != "" && strings.EqualFold(i.CurrentAssigneeID, userID)
}

func (i *Instance) IsEscalated(levelOrder int) bool {
	for _, o := range i.EscalatedLevels {
		if o == levelOrder {
			return true
		}
	}
	return false
}

// Start runs the auto approval gate and, when it does not short-circuit, enters the first applicable level
func (i *Instance) Start(rule *AutoApprovalRule, resolve ApproverResolver, now time.Time) error {
	autoApproved, err := rule.IsSatisfied(i.Context.Vars())
	if err != nil {
		return err
	}
	if autoApproved {
		i.conclude(InstanceStatusAutoApproved, now)
		return nil
	}

	next, assignee, err := i.planLevel(0, resolve, now)
	if err != nil {
		return err
	}
	i.enterLevel(next, assignee, now)
	return nil
}

// Decide records the assignee's decision on the current level and moves the instance forward.
// Any rejection concludes the instance.
func (i *Instance) Decide(actorID, decision, comment string, resolve ApproverResolver, now time.Time) error {
	if i.IsTerminal() {
		return fmt.Errorf("%w: %q", ErrNotPending, i.Status)
	}
	if !i.IsAssignedTo(actorID) {
		return fmt.Errorf("%w: %q", ErrUnauthorizedActor, actorID)
	}
	level := i.CurrentLevel()
	if level == nil {
		return fmt.Errorf("%w: pending instance has no current level", ErrStaleInstance)
	}

	switch decision {
	case DecisionApproved:
		next, assignee, err := i.planLevel(i.CurrentLevelIndex+1, resolve, now)
		if err != nil {
			return err
		}
		i.record(level.Order, actorID, DecisionApproved, comment, now)
		i.enterLevel(next, assignee, now)
	case DecisionRejected:
		i.record(level.Order, actorID, DecisionRejected, comment, now)
		i.conclude(InstanceStatusRejected, now)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
	}
	return nil
}

// Escalate hands the current level over to the escalation role. It returns false without
// changing anything when levelOrder was already escalated or the snapshot has no active rule.
// Status and current level are never changed.
func (i *Instance) Escalate(levelOrder int, resolve ApproverResolver, now time.Time) (bool, error) {
	if i.IsTerminal() {
		return false, fmt.Errorf("%w: %q", ErrNotPending, i.Status)
	}
	level := i.CurrentLevel()
	if level == nil || level.Order != levelOrder {
		return false, fmt.Errorf("%w: level %d is no longer current", ErrStaleInstance, levelOrder)
	}
	if i.IsEscalated(levelOrder) {
		return false, nil
	}
	rule := i.Snapshot.Escalation
	if !rule.IsActive() {
		return false, nil
	}

	assignee, err := resolve(rule.EscalateToRole, now)
	if err != nil {
		return false, fmt.Errorf("resolving escalation role %q: %w", rule.EscalateToRole, err)
	}

	previous := i.CurrentAssigneeID
	i.CurrentAssigneeID = assignee
	enteredAt := now
	i.LevelEnteredAt = &enteredAt
	i.EscalatedLevels = append(i.EscalatedLevels, levelOrder)
	i.record(levelOrder, SystemActorName, DecisionEscalated, fmt.Sprintf("reassigned from %s to %s", previous, assignee), now)
	return true, nil
}

// EscalationDue tells whether the current level has waited at least the escalation duration
func (i *Instance) EscalationDue(now time.Time) (bool, error) {
	if i.IsTerminal() || i.Snapshot == nil || !i.Snapshot.Escalation.IsActive() || i.LevelEnteredAt == nil {
		return false, nil
	}
	level := i.CurrentLevel()
	if level == nil || i.IsEscalated(level.Order) {
		return false, nil
	}

	d, err := i.Snapshot.Escalation.Duration()
	if err != nil {
		return false, err
	}
	return now.Sub(*i.LevelEnteredAt) >= d, nil
}

func (i *Instance) Cancel(actorID, reason string, now time.Time) error {
	if i.IsTerminal() {
		return fmt.Errorf("%w: %q", ErrNotPending, i.Status)
	}
	i.CancelledBy = actorID
	i.CancelReason = reason
	i.conclude(InstanceStatusCancelled, now)
	return nil
}

// planLevel finds the first applicable level starting at index from and resolves its approver
// without mutating the instance. NoCurrentLevel means no level is left.
func (i *Instance) planLevel(from int, resolve ApproverResolver, now time.Time) (int, string, error) {
	vars := i.Context.Vars()
	for idx := from; idx < len(i.Snapshot.Levels); idx++ {
		level := i.Snapshot.Levels[idx]
		applicable, err := level.IsApplicable(vars)
		if err != nil {
			return NoCurrentLevel, "", err
		}
		if !applicable {
			continue
		}

		assignee, err := resolve(level.ApproverRole, now)
		if err != nil {
			return NoCurrentLevel, "", fmt.Errorf("resolving approver of level %d: %w", level.Order, err)
		}
		return idx, assignee, nil
	}
	return NoCurrentLevel, "", nil
}

func (i *Instance) enterLevel(idx int, assignee string, now time.Time) {
	if idx == NoCurrentLevel {
		i.conclude(InstanceStatusApproved, now)
		return
	}
	i.Status = InstanceStatusPending
	i.CurrentLevelIndex = idx
	i.CurrentAssigneeID = assignee
	enteredAt := now
	i.LevelEnteredAt = &enteredAt
	i.UpdatedAt = now
}

func (i *Instance) conclude(status string, now time.Time) {
	i.Status = status
	i.CurrentLevelIndex = NoCurrentLevel
	i.CurrentAssigneeID = ""
	i.LevelEnteredAt = nil
	i.UpdatedAt = now
}

func (i *Instance) record(levelOrder int, actorID, decision, comment string, now time.Time) {
	i.Decisions = append(i.Decisions, &Decision{
		LevelOrder: levelOrder,
		ActorID:    actorID,
		Decision:   decision,
		Comment:    comment,
		Timestamp:  now,
	})
	i.UpdatedAt = now
}

func (i *Instance) Clone() *Instance {
	clone := *i
	clone.Context = i.Context.Clone()
	if i.Snapshot != nil {
		snapshot := *i.Snapshot
		snapshot.Levels = make([]*Level, 0, len(i.Snapshot.Levels))
		for _, l := range i.Snapshot.Levels {
			level := *l
			snapshot.Levels = append(snapshot.Levels, &level)
		}
		if i.Snapshot.Escalation != nil {
			snapshot.Escalation = i.Snapshot.Escalation.clone()
		}
		clone.Snapshot = &snapshot
	}
	if i.Decisions != nil {
		clone.Decisions = make([]*Decision, 0, len(i.Decisions))
		for _, d := range i.Decisions {
			decision := *d
			clone.Decisions = append(clone.Decisions, &decision)
		}
	}
	if i.LevelEnteredAt != nil {
		t := *i.LevelEnteredAt
		clone.LevelEnteredAt = &t
	}
	if i.EscalatedLevels != nil {
		clone.EscalatedLevels = append([]int{}, i.EscalatedLevels...)
	}
	return &clone
}

type ListInstancesFilter struct {
	Statuses     []string `mapstructure:"statuses" validate:"omitempty,min=1"`
	AssigneeID   string   `mapstructure:"assignee_id" validate:"omitempty"`
	RequesterID  string   `mapstructure:"requester_id" validate:"omitempty"`
	TemplateID   string   `mapstructure:"template_id" validate:"omitempty"`
	RequestTypes []string `mapstructure:"request_types" validate:"omitempty,min=1"`
	Size         int      `mapstructure:"size" validate:"omitempty"`
	Offset       int      `mapstructure:"offset" validate:"omitempty"`
}
