// Package filter narrows and reshapes JSON listings with JMESPath.
package filter

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// Apply applies filter and query expressions to a JSON document
// Filter narrows results (e.g., [?city=='Oslo'])
// Query transforms/selects fields (e.g., [].lastName)
func Apply(body string, filter string, query string) (string, error) {
	if filter == "" && query == "" {
		return body, nil
	}

	var data interface{}
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}

	result, err := search(data, filter, query)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "null", nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(output), nil
}

// Value runs filter and query over any JSON-encodable value and returns the
// decoded result. Expressions see the JSON field names, not the Go ones.
func Value(v interface{}, filter string, query string) (interface{}, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return search(data, filter, query)
}

// search applies filter first, then query, to decoded JSON
func search(data interface{}, filter string, query string) (interface{}, error) {
	result := data

	if filter != "" {
		filtered, err := applyJMESPath(result, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to apply filter: %w", err)
		}
		result = filtered
	}

	if query != "" {
		queried, err := applyJMESPath(result, query)
		if err != nil {
			return nil, fmt.Errorf("failed to apply query: %w", err)
		}
		result = queried
	}

	return result, nil
}

func applyJMESPath(data interface{}, expression string) (interface{}, error) {
	jp, err := jmespath.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(data)
	if err != nil {
		return nil, fmt.Errorf("JMESPath search failed: %w", err)
	}
	return result, nil
}

// IsValidJMESPath checks if an expression is valid JMESPath syntax
func IsValidJMESPath(expression string) bool {
	_, err := jmespath.Compile(expression)
	return err == nil
}
