package slices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenericsFilterSliceEmptyValues(t *testing.T) {
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, GenericsFilterSliceEmptyValues([]string{"", "a@example.com", "", "b@example.com"}))
	assert.Equal(t, []int{1, 3}, GenericsFilterSliceEmptyValues([]int{0, 1, 0, 3}))
	assert.Empty(t, GenericsFilterSliceEmptyValues([]string(nil)))
}

func TestGenericsUniqueSliceValues(t *testing.T) {
	assert.Equal(t, []string{"lark", "log"}, GenericsUniqueSliceValues([]string{"lark", "log", "lark"}))
	assert.Equal(t, []int{2, 1}, GenericsUniqueSliceValues([]int{2, 1, 2, 1}))
}

func TestGenericsIsSliceEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []string
		expected bool
	}{
		{"both empty", nil, []string{}, true},
		{"same order", []string{"a", "b"}, []string{"a", "b"}, true},
		{"different order", []string{"a", "b"}, []string{"b", "a"}, true},
		{"different length", []string{"a"}, []string{"a", "a"}, false},
		{"same length different counts", []string{"a", "a", "b"}, []string{"a", "b", "b"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenericsIsSliceEqual(tt.a, tt.b))
		})
	}
}

func TestGenericsStandardizeSlice(t *testing.T) {
	assert.Equal(t, []string{}, GenericsStandardizeSlice[string](nil))
	assert.Equal(t,
		[]string{"alice@example.com", "carol@example.com"},
		GenericsStandardizeSlice([]string{"carol@example.com", "", "alice@example.com", "carol@example.com"}),
	)
	assert.Equal(t, []int{1, 2, 3}, GenericsStandardizeSlice([]int{3, 0, 1, 2, 3}))
}

func TestGenericsSliceContainsOne(t *testing.T) {
	assert.True(t, GenericsSliceContainsOne([]string{"staff", "lead"}, "intern", "lead"))
	assert.False(t, GenericsSliceContainsOne([]string{"staff"}, "intern"))
	assert.False(t, GenericsSliceContainsOne([]string{}, "staff"))
	assert.False(t, GenericsSliceContainsOne([]string{"staff"}))
}

func TestGenericsGroupBy(t *testing.T) {
	got := GenericsGroupBy([]string{"apple", "avocado", "banana"}, func(s string) byte { return s[0] })
	assert.Equal(t, map[byte][]string{'a': {"apple", "avocado"}, 'b': {"banana"}}, got)
}
