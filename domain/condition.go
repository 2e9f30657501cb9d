package domain

import (
	"fmt"
	"strings"

	"github.com/goto/approvals/pkg/evaluator"
)

// EvaluateCondition evaluates condition against vars. An empty condition always holds.
func EvaluateCondition(condition string, vars map[string]interface{}) (bool, error) {
	if strings.TrimSpace(condition) == "" {
		return true, nil
	}

	ok, err := evaluator.Expression(condition).Evaluate(vars)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %s", ErrInvalidCondition, condition, err)
	}
	return ok, nil
}

func ValidateCondition(condition string) error {
	if err := evaluator.Expression(condition).Validate(); err != nil {
		return fmt.Errorf("%w: %q: %s", ErrInvalidCondition, condition, err)
	}
	return nil
}
