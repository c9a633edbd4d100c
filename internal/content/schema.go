package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Response schemas for the two generation endpoints. Validation runs before
// decoding so a shape mismatch surfaces as *ErrMalformed instead of a
// half-populated struct.

var theorySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"summary_text": map[string]any{"type": "string"},
		"warning":      map[string]any{"type": []any{"string", "null"}},
		"metadata":     map[string]any{"type": []any{"object", "null"}},
	},
	"required": []any{"summary_text"},
}

var quizSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
					},
					"correct_answer": map[string]any{"type": "string"},
					"explanation":    map[string]any{"type": []any{"string", "null"}},
				},
				"required": []any{"question", "options", "correct_answer"},
			},
		},
		"warning":  map[string]any{"type": []any{"string", "null"}},
		"metadata": map[string]any{"type": []any{"object", "null"}},
	},
	"required": []any{"questions"},
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateShape validates raw JSON against a named schema definition.
// Returns *ErrMalformed on parse or validation failure.
func validateShape(name string, definition map[string]any, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrMalformed{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema(name, definition)
	if err != nil {
		return &ErrMalformed{Content: raw, Err: fmt.Errorf("compile schema %q: %w", name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrMalformed{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
