// Package schema runs JSON Schema presence checks on payloads crossing the
// process boundary (server responses, answer files).
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a JSON Schema document compiled on first use.
type Schema struct {
	Name   string
	Source string // the schema as JSON text

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// ValidationError indicates the payload does not satisfy the schema.
type ValidationError struct {
	Schema string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Schema, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Check validates raw JSON against s. Returns *ValidationError on failure.
func Check(s *Schema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ValidationError{Schema: s.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return CheckValue(s, parsed)
}

// CheckValue validates an already decoded JSON value (maps, slices, strings,
// float64, bool, nil) against s.
func CheckValue(s *Schema, v any) error {
	compiled, err := s.compile()
	if err != nil {
		return &ValidationError{Schema: s.Name, Err: err}
	}
	if err := compiled.Validate(v); err != nil {
		return &ValidationError{Schema: s.Name, Err: err}
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(s.Source), &doc); err != nil {
			s.err = fmt.Errorf("parse schema source: %w", err)
			return
		}
		url := "mem://" + s.Name + ".json"
		c := jsonschema.NewCompiler()
		if err := c.AddResource(url, doc); err != nil {
			s.err = fmt.Errorf("add schema: %w", err)
			return
		}
		s.compiled, s.err = c.Compile(url)
	})
	return s.compiled, s.err
}

// Questions is the presence check for GET /api/questions. Only the fields
// the quiz reads are required; everything else the server sends is ignored.
var Questions = &Schema{
	Name: "questions",
	Source: `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "items": {"type": "object", "required": ["id", "text", "options"]}
    },
    "open_questions": {
      "type": "array",
      "items": {"type": "object", "required": ["id"]}
    }
  }
}`,
}

// AnswersFile is the presence check for answer files fed to `submit`.
var AnswersFile = &Schema{
	Name: "answers-file",
	Source: `{
  "type": "object",
  "required": ["name", "answers"],
  "properties": {
    "name": {"type": "string"},
    "answers": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    }
  }
}`,
}
