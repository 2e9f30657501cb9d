package diff_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/goto/approvals/pkg/diff"
)

type level struct {
	Order int    `json:"order"`
	Role  string `json:"role"`
}

type document struct {
	Name    string  `json:"name"`
	Version int     `json:"version"`
	Levels  []level `json:"levels"`
	Note    string  `json:"note,omitempty"`
}

func TestChangelog(t *testing.T) {
	base := document{
		Name:    "expense",
		Version: 1,
		Levels:  []level{{Order: 1, Role: "manager"}},
		Note:    "initial",
	}

	testCases := []struct {
		name     string
		next     document
		ignored  []string
		expected []diff.Change
	}{
		{
			name: "identical documents",
			next: base,
		},
		{
			name: "replaced and removed values",
			next: document{Name: "expense v2", Version: 1, Levels: []level{{Order: 1, Role: "manager"}}},
			expected: []diff.Change{
				{Op: "replace", Path: "/name", From: "expense", To: "expense v2"},
				{Op: "remove", Path: "/note", From: "initial"},
			},
		},
		{
			name: "nested array element",
			next: document{Name: "expense", Version: 1, Levels: []level{{Order: 1, Role: "director"}}, Note: "initial"},
			expected: []diff.Change{
				{Op: "replace", Path: "/levels/0/role", From: "manager", To: "director"},
			},
		},
		{
			name:    "ignored paths",
			next:    document{Name: "expense", Version: 2, Levels: []level{{Order: 1, Role: "manager"}, {Order: 2, Role: "finance"}}, Note: "initial"},
			ignored: []string{"/version", "/levels"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := diff.Changelog(base, tc.next, tc.ignored...)

			assert.NoError(t, err)
			if d := cmp.Diff(tc.expected, got, cmpopts.SortSlices(func(a, b diff.Change) bool { return a.Path < b.Path })); d != "" {
				t.Errorf("result not match, diff: %v", d)
			}
		})
	}

	t.Run("should fail on values that can not be marshalled", func(t *testing.T) {
		_, err := diff.Changelog(map[string]interface{}{"fn": func() {}}, base)
		assert.Error(t, err)
	})
}
