// Package validation checks request bodies against JSON Schemas before they
// are decoded into request structs.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidBody is returned when the body is not valid JSON
var ErrInvalidBody = errors.New("invalid request body")

// SchemaError lists the schema violations found in a request body
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// Schema is a compiled JSON Schema
type Schema struct {
	schema *gojsonschema.Schema
}

// MustCompile compiles a schema literal and panics if it is malformed
func MustCompile(source string) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("invalid JSON schema: %v", err))
	}
	return &Schema{schema: s}
}

// Validate checks body against the schema. It returns ErrInvalidBody for
// malformed JSON and *SchemaError when the document violates the schema.
func (s *Schema) Validate(body []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return ErrInvalidBody
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return &SchemaError{Violations: violations}
}

// Request body schemas
var (
	PostContent = MustCompile(`{
		"type": "object",
		"required": ["content"],
		"properties": {
			"content": {"type": "string", "minLength": 1}
		}
	}`)

	Reaction = MustCompile(`{
		"type": "object",
		"required": ["like"],
		"properties": {
			"like": {"type": "boolean"}
		}
	}`)

	SignUp = MustCompile(`{
		"type": "object",
		"required": ["name", "email", "password"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"email": {"type": "string", "format": "email"},
			"password": {
				"type": "string",
				"pattern": "^[A-Za-z0-9]{8,12}$",
				"allOf": [
					{"pattern": "[A-Za-z]"},
					{"pattern": "[0-9]"}
				]
			},
			"role": {"type": "string", "enum": ["NORMAL", "ADMIN"]}
		}
	}`)

	Login = MustCompile(`{
		"type": "object",
		"required": ["email", "password"],
		"properties": {
			"email": {"type": "string", "format": "email"},
			"password": {"type": "string", "minLength": 1}
		}
	}`)
)
