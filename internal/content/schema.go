package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// JSON schemas for the two reference files. Structural checks live here;
// cross-field checks (correct_index bounds, curriculum completeness) are
// done in Go after decoding.
const curriculumSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["week_number", "title"],
    "properties": {
      "week_number": {"type": "integer", "minimum": 1, "maximum": 12},
      "title": {"type": "string", "minLength": 1}
    }
  }
}`

const questionsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "domain", "difficulty", "question", "options", "correct_index", "explanation"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "domain": {"type": "string", "minLength": 1},
      "difficulty": {"enum": ["Easy", "Medium", "Hard"]},
      "question": {"type": "string", "minLength": 1},
      "options": {
        "type": "array",
        "items": {"type": "string"},
        "minItems": 2
      },
      "correct_index": {"type": "integer", "minimum": 0},
      "explanation": {"type": "string"},
      "legal_reference": {"type": "string"},
      "domain_weight": {"type": "number", "minimum": 0}
    }
  }
}`

var schemaCache sync.Map // map[string]*jsonschema.Schema

// compiledSchema returns a cached compiled schema, compiling on first use.
func compiledSchema(name, definition string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(definition), &parsed); err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add resource %q: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", name, err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}

// validateJSON checks raw against the named schema.
func validateJSON(name, definition string, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(name, definition)
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
