package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value; a non-nil error rejects it.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON value in raw into T and runs validator
// on it when one is given.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var result T
	block, err := ExtractJSONValue(raw)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(block, &result); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validator != nil {
		if err := validator(result); err != nil {
			var zero T
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

// ExtractJSONValue returns the object or array starting at the first bracket
// in raw. Markdown fences and prose around the value are ignored.
func ExtractJSONValue(raw string) (json.RawMessage, error) {
	start := strings.IndexAny(raw, "{[")
	if start < 0 {
		return nil, fmt.Errorf("%w: no JSON value found in response", ErrInvalidOutput)
	}
	// Decode stops after one value, so trailing fences and prose are never read.
	var v json.RawMessage
	if err := json.NewDecoder(strings.NewReader(raw[start:])).Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: response is not well-formed JSON: %v", ErrInvalidOutput, err)
	}
	return v, nil
}
