package evaluator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/ast"
	"github.com/antonmedv/expr/parser"
	"github.com/antonmedv/expr/vm"
	"github.com/patrickmn/go-cache"
)

var (
	ErrMalformedExpression = errors.New("malformed expression")
	ErrUnknownAttribute    = errors.New("unknown attribute")
)

var (
	comparisonOperators  = []string{"<", "<=", ">", ">=", "==", "!="}
	conjunctionOperators = []string{"&&", "and"}
)

// compiled programs are immutable once built and safe to share between goroutines
var programs = cache.New(time.Hour, 2*time.Hour)

// Expression is a conjunction of comparisons between an attribute and a literal,
// e.g. `days > 5 && department == "finance"`.
type Expression string

type comparison struct {
	attribute string
	operator  string
	literal   interface{}
}

func (e Expression) String() string {
	return strings.TrimSpace(string(e))
}

// Validate checks the expression against the comparison grammar without evaluating it
func (e Expression) Validate() error {
	_, err := e.comparisons()
	return err
}

// Attributes returns the attribute names referenced by the expression in order of appearance
func (e Expression) Attributes() ([]string, error) {
	cmps, err := e.comparisons()
	if err != nil {
		return nil, err
	}

	var attributes []string
	seen := map[string]bool{}
	for _, c := range cmps {
		if !seen[c.attribute] {
			seen[c.attribute] = true
			attributes = append(attributes, c.attribute)
		}
	}
	return attributes, nil
}

// Evaluate runs the expression against vars. Every referenced attribute must be present in vars
// and hold a value of the same kind (number or string) as the literal it is compared to.
func (e Expression) Evaluate(vars map[string]interface{}) (bool, error) {
	cmps, err := e.comparisons()
	if err != nil {
		return false, err
	}

	for _, c := range cmps {
		value, ok := vars[c.attribute]
		if !ok || value == nil {
			return false, fmt.Errorf("%w: %q", ErrUnknownAttribute, c.attribute)
		}
		if err := c.checkOperand(value); err != nil {
			return false, err
		}
	}

	program, err := e.program()
	if err != nil {
		return false, err
	}

	result, err := expr.Run(program, vars)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrMalformedExpression, err)
	}

	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expression returns %T instead of bool", ErrMalformedExpression, result)
	}
	return b, nil
}

func (e Expression) program() (*vm.Program, error) {
	code := e.String()
	if p, found := programs.Get(code); found {
		return p.(*vm.Program), nil
	}

	p, err := expr.Compile(code, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedExpression, err)
	}
	programs.SetDefault(code, p)
	return p, nil
}

func (e Expression) comparisons() ([]comparison, error) {
	code := e.String()
	if code == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	}

	tree, err := parser.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedExpression, err)
	}

	var cmps []comparison
	if err := collect(tree.Node, &cmps); err != nil {
		return nil, err
	}
	return cmps, nil
}

func collect(node ast.Node, cmps *[]comparison) error {
	n, ok := node.(*ast.BinaryNode)
	if !ok {
		return fmt.Errorf("%w: expected a comparison, got %s", ErrMalformedExpression, nodeKind(node))
	}

	if contains(conjunctionOperators, n.Operator) {
		if err := collect(n.Left, cmps); err != nil {
			return err
		}
		return collect(n.Right, cmps)
	}

	if !contains(comparisonOperators, n.Operator) {
		return fmt.Errorf("%w: unsupported operator %q", ErrMalformedExpression, n.Operator)
	}

	identifier, ok := n.Left.(*ast.IdentifierNode)
	if !ok {
		return fmt.Errorf("%w: left side of %q must be an attribute", ErrMalformedExpression, n.Operator)
	}

	literal, err := literalValue(n.Right)
	if err != nil {
		return err
	}

	*cmps = append(*cmps, comparison{
		attribute: identifier.Value,
		operator:  n.Operator,
		literal:   literal,
	})
	return nil
}

func literalValue(node ast.Node) (interface{}, error) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return float64(n.Value), nil
	case *ast.FloatNode:
		return n.Value, nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.UnaryNode:
		if n.Operator == "-" {
			v, err := literalValue(n.Node)
			if err != nil {
				return nil, err
			}
			if f, ok := v.(float64); ok {
				return -f, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: right side must be a numeric or string literal, got %s", ErrMalformedExpression, nodeKind(node))
}

func (c comparison) checkOperand(value interface{}) error {
	switch c.literal.(type) {
	case float64:
		if !isNumber(value) {
			return fmt.Errorf("%w: attribute %q holds %T, compared to a number", ErrMalformedExpression, c.attribute, value)
		}
	case string:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%w: attribute %q holds %T, compared to a string", ErrMalformedExpression, c.attribute, value)
		}
	}
	return nil
}

func isNumber(v interface{}) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func nodeKind(node ast.Node) string {
	return strings.TrimSuffix(strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast."), "Node")
}
