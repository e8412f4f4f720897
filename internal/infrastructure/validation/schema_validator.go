// Package validation checks shape request parameters against the JSON
// schema of each shape kind.
package validation

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	apperrors "github.com/reglet-dev/shapes/internal/application/errors"
	"github.com/reglet-dev/shapes/internal/domain/values"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// SchemaValidator validates parameter maps. Compiled schemas are cached per
// kind; the validator is safe for concurrent use.
type SchemaValidator struct {
	mu      sync.Mutex
	schemas map[values.Kind]*jsonschema.Schema
}

// NewSchemaValidator creates a validator backed by the embedded schemas.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{
		schemas: make(map[values.Kind]*jsonschema.Schema),
	}
}

// Schema returns the raw JSON schema document for kind.
func Schema(kind values.Kind) ([]byte, error) {
	if kind.IsZero() {
		return nil, fmt.Errorf("no schema for unknown shape kind")
	}
	return schemaFS.ReadFile("schemas/" + kind.String() + ".json")
}

// ValidateParams checks params against the schema for kind.
// Violations are reported as an *apperrors.ValidationError listing every
// failing location.
func (v *SchemaValidator) ValidateParams(kind values.Kind, params map[string]interface{}) error {
	schema, err := v.compiled(kind)
	if err != nil {
		return err
	}

	if params == nil {
		params = map[string]interface{}{}
	}

	if err := schema.Validate(params); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return formatSchemaValidationError(kind, validationErr)
		}
		return fmt.Errorf("params validation failed: %w", err)
	}

	return nil
}

func (v *SchemaValidator) compiled(kind values.Kind) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[kind]; ok {
		return schema, nil
	}

	schemaBytes, err := Schema(kind)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	url := kind.String() + ".json"
	if err := compiler.AddResource(url, bytes.NewReader(schemaBytes)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource for %s: %w", kind, err)
	}

	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema for %s: %w", kind, err)
	}

	v.schemas[kind] = schema
	return schema, nil
}

// formatSchemaValidationError flattens the cause tree into one detail line
// per failing location.
func formatSchemaValidationError(kind values.Kind, err *jsonschema.ValidationError) error {
	var details []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			details = append(details, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(details) == 0 {
		details = append(details, err.Error())
	}

	return apperrors.NewValidationError("params", fmt.Sprintf("invalid %s parameters", kind), details...)
}
