package remote

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionListSchema describes the question payload the service returns.
// Validating up front turns service drift into a clean decoding failure
// instead of half-populated questions reaching the engine.
var questionListSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "course_id", "timestamp", "question", "type", "correct_answer"},
		"properties": map[string]any{
			"id":             map[string]any{"type": "string", "minLength": 1},
			"course_id":      map[string]any{"type": "string", "minLength": 1},
			"timestamp":      map[string]any{"type": "number", "minimum": 0},
			"question":       map[string]any{"type": "string"},
			"type":           map[string]any{"type": "string"},
			"options":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"correct_answer": map[string]any{"type": "string"},
			"explanation":    map[string]any{"type": "string"},
			"metadata": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"sequence_items": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"matching_pairs": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"left", "right"},
							"properties": map[string]any{
								"left":  map[string]any{"type": "string"},
								"right": map[string]any{"type": "string"},
							},
						},
					},
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateQuestionPayload validates a raw question-list response body.
// Returns a decoding-kind SyncError on failure.
func validateQuestionPayload(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &SyncError{Kind: KindDecoding, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := questionSchema()
	if err != nil {
		return &SyncError{Kind: KindDecoding, Err: fmt.Errorf("compile question schema: %w", err)}
	}

	if err := schema.Validate(parsed); err != nil {
		return &SyncError{Kind: KindDecoding, Err: fmt.Errorf("question payload validation failed: %w", err)}
	}
	return nil
}

// questionSchema returns the compiled question-list schema, compiling it
// exactly once.
func questionSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		const url = "schema://question-list.json"
		if err := c.AddResource(url, normalizeSchema(questionListSchema)); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// normalizeSchema round-trips the definition through JSON because the
// jsonschema compiler expects a plain parsed value.
func normalizeSchema(def map[string]any) any {
	b, err := json.Marshal(def)
	if err != nil {
		return def
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return def
	}
	return parsed
}
