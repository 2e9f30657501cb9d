package domain_test

import (
	"testing"
	"time"

	"github.com/goto/approvals/domain"
	"github.com/stretchr/testify/assert"
)

func TestDirectorySnapshot_Resolve(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 10, 23, 59, 59, 0, time.UTC)
	d := domain.DirectorySnapshot{
		Roles: map[string][]string{
			"finance_head": {"zoe@example.com", "amir@example.com", "amir@example.com", ""},
			"empty":        {},
		},
		Backups: []*domain.BackupApprover{
			{ID: "b1", PrimaryApproverID: "amir@example.com", BackupApproverID: "bella@example.com", ValidFrom: from, ValidTo: to},
		},
	}

	testCases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"before the window", from.Add(-time.Second), "amir@example.com"},
		{"at valid_from", from, "bella@example.com"},
		{"inside the window", from.Add(72 * time.Hour), "bella@example.com"},
		{"at valid_to", to, "bella@example.com"},
		{"after the window", to.Add(time.Second), "amir@example.com"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := d.Resolve("finance_head", tc.at)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("should fail for a role without holders", func(t *testing.T) {
		_, err := d.Resolve("empty", from)
		assert.ErrorIs(t, err, domain.ErrUnresolvedRole)

		_, err = d.Resolve("unknown", from)
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})
}

func TestSelectBackup(t *testing.T) {
	created := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	window := func(id, backup string, createdAt time.Time) *domain.BackupApprover {
		return &domain.BackupApprover{
			ID:                id,
			PrimaryApproverID: "p",
			BackupApproverID:  backup,
			ValidFrom:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			ValidTo:           time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
			CreatedAt:         createdAt,
		}
	}
	at := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	t.Run("should pick the most recently created overlapping assignment", func(t *testing.T) {
		got := domain.SelectBackup([]*domain.BackupApprover{
			window("a", "old", created),
			window("b", "new", created.Add(time.Hour)),
		}, "p", at)
		assert.Equal(t, "new", got.BackupApproverID)
	})

	t.Run("should break creation ties by id", func(t *testing.T) {
		got := domain.SelectBackup([]*domain.BackupApprover{
			window("b", "second", created),
			window("a", "first", created),
		}, "p", at)
		assert.Equal(t, "second", got.BackupApproverID)
	})

	t.Run("should ignore other primaries", func(t *testing.T) {
		b := window("a", "x", created)
		b.PrimaryApproverID = "other"
		assert.Nil(t, domain.SelectBackup([]*domain.BackupApprover{b}, "p", at))
	})
}

func TestBackupApprover_Validate(t *testing.T) {
	now := time.Now()
	assert.NoError(t, (&domain.BackupApprover{ValidFrom: now, ValidTo: now}).Validate())
	assert.ErrorIs(t, (&domain.BackupApprover{ValidFrom: now, ValidTo: now.Add(-time.Minute)}).Validate(), domain.ErrInvalidBackupRange)
}
