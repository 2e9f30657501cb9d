package diff

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/wI2L/jsondiff"
)

// Change is a single field level difference between two documents. Path is a json pointer.
type Change struct {
	Op   string      `json:"op"`
	Path string      `json:"path"`
	From interface{} `json:"from,omitempty"`
	To   interface{} `json:"to,omitempty"`
}

// Changelog compares the json representation of prev and next. Changes under any of the ignored
// paths are left out.
func Changelog(prev, next interface{}, ignored ...string) ([]Change, error) {
	patch, err := jsondiff.Compare(prev, next)
	if err != nil {
		return nil, fmt.Errorf("comparing documents: %w", err)
	}
	if len(patch) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(prev)
	if err != nil {
		return nil, err
	}
	var prevDoc interface{}
	if err := json.Unmarshal(raw, &prevDoc); err != nil {
		return nil, err
	}

	var changes []Change
	for _, op := range patch {
		if isIgnored(op.Path, ignored) {
			continue
		}

		c := Change{Op: op.Type, Path: op.Path, To: op.Value}
		if op.Type == jsondiff.OperationRemove || op.Type == jsondiff.OperationReplace {
			if c.From, err = lookup(prevDoc, op.Path); err != nil {
				return nil, err
			}
		}
		changes = append(changes, c)
	}
	return changes, nil
}

func isIgnored(path string, ignored []string) bool {
	for _, p := range ignored {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func lookup(doc interface{}, pointer string) (interface{}, error) {
	if pointer == "" {
		return doc, nil
	}

	current := doc
	for _, token := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		token = strings.NewReplacer("~1", "/", "~0", "~").Replace(token)
		switch node := current.(type) {
		case map[string]interface{}:
			current = node[token]
		case []interface{}:
			i, err := strconv.Atoi(token)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in %q", token, pointer)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("path %q does not exist", pointer)
		}
	}
	return current, nil
}
