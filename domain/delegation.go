package domain

import (
	"fmt"
	"time"

	"github.com/goto/approvals/pkg/slices"
)

// BackupApprover lets BackupApproverID act on behalf of PrimaryApproverID within [ValidFrom, ValidTo]
type BackupApprover struct {
	ID                string    `json:"id" yaml:"id"`
	PrimaryApproverID string    `json:"primary_approver_id" yaml:"primary_approver_id" validate:"required"`
	BackupApproverID  string    `json:"backup_approver_id" yaml:"backup_approver_id" validate:"required,nefield=PrimaryApproverID"`
	ValidFrom         time.Time `json:"valid_from" yaml:"valid_from" validate:"required"`
	ValidTo           time.Time `json:"valid_to" yaml:"valid_to" validate:"required"`
	Reason            string    `json:"reason,omitempty" yaml:"reason,omitempty"`
	CreatedBy         string    `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	CreatedAt         time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

func (b *BackupApprover) Validate() error {
	if b.ValidTo.Before(b.ValidFrom) {
		return fmt.Errorf("%w: valid_to %s is before valid_from %s", ErrInvalidBackupRange, b.ValidTo.Format(time.RFC3339), b.ValidFrom.Format(time.RFC3339))
	}
	return nil
}

// Covers tells whether t falls within the inclusive validity window
func (b *BackupApprover) Covers(t time.Time) bool {
	return !t.Before(b.ValidFrom) && !t.After(b.ValidTo)
}

// SelectBackup picks, among the assignments of primaryID covering at, the most recently created one.
// Assignments created at the same instant are ordered by ID.
func SelectBackup(assignments []*BackupApprover, primaryID string, at time.Time) *BackupApprover {
	var selected *BackupApprover
	for _, b := range assignments {
		if b.PrimaryApproverID != primaryID || !b.Covers(at) {
			continue
		}
		if selected == nil ||
			b.CreatedAt.After(selected.CreatedAt) ||
			(b.CreatedAt.Equal(selected.CreatedAt) && b.ID > selected.ID) {
			selected = b
		}
	}
	return selected
}

type RoleMapping struct {
	Role      string    `json:"role" yaml:"role" validate:"required"`
	UserIDs   []string  `json:"user_ids" yaml:"user_ids"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Holders returns the distinct, non-empty user ids in a stable order
func (m *RoleMapping) Holders() []string {
	if m == nil {
		return []string{}
	}
	return slices.GenericsStandardizeSlice(m.UserIDs)
}

// DirectorySnapshot is a point-in-time view of role holders and backup assignments.
// Resolution against it is a pure function.
type DirectorySnapshot struct {
	Roles   map[string][]string
	Backups []*BackupApprover
}

// Resolve returns the user responsible for role at the given instant. The primary holder is the
// first one in sorted order, replaced by its backup while an assignment covers the instant.
func (d DirectorySnapshot) Resolve(role string, at time.Time) (string, error) {
	holders := slices.GenericsStandardizeSlice(d.Roles[role])
	if len(holders) == 0 {
		return "", fmt.Errorf("%w: %q has no holder", ErrUnresolvedRole, role)
	}

	primary := holders[0]
	if b := SelectBackup(d.Backups, primary, at); b != nil {
		return b.BackupApproverID, nil
	}
	return primary, nil
}

type ListBackupApproversFilter struct {
	PrimaryApproverIDs []string   `mapstructure:"primary_approver_ids" validate:"omitempty,min=1"`
	BackupApproverID   string     `mapstructure:"backup_approver_id" validate:"omitempty"`
	ActiveAt           *time.Time `mapstructure:"active_at" validate:"omitempty"`
}
