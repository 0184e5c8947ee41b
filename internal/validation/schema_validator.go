// Package validation checks JSON documents against the embedded JSON schemas.
package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schemas holds the bundled schema files
//
//go:embed schemas/*.json
var Schemas embed.FS

// Schema names, relative to the schemas directory
const (
	SaveSchema = "save.schema.json"
)

const schemaDir = "schemas"

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaName string) error
}

type validator struct {
	fsys fs.FS

	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator that reads schemas from fsys. A nil
// fsys uses the bundled schemas.
func NewSchemaValidator(fsys fs.FS) SchemaValidator {
	if fsys == nil {
		sub, err := fs.Sub(Schemas, schemaDir)
		if err != nil {
			panic(err) // embedded directory always exists
		}
		fsys = sub
	}
	return &validator{
		fsys:     fsys,
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateBytes validates JSON data bytes against the named schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf(ErrMsgLoadSchemaFmt, schemaName, err)
	}

	var jsonData interface{}
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return fmt.Errorf(ErrMsgParseDataFmt, err)
	}

	if err := schema.Validate(jsonData); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// loadSchema loads and compiles a schema, caching the result
func (v *validator) loadSchema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	raw, err := fs.ReadFile(v.fsys, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSchemaFmt, err)
	}

	var schemaJSON interface{}
	if err := json.Unmarshal(raw, &schemaJSON); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSchemaFmt, err)
	}

	if err := v.compiler.AddResource(name, schemaJSON); err != nil {
		return nil, fmt.Errorf(ErrMsgAddSchemaFmt, err)
	}

	schema, err := v.compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCompileSchemaFmt, err)
	}

	v.schemas[name] = schema
	return schema, nil
}

// formatValidationError lists every failing location, one per line
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf(ErrMsgSchemaFailedFmt, strings.Join(lines, "; "))
	}
	return fmt.Errorf(ErrMsgValidationFmt, err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if msg := formatError(err); msg != "" && len(err.Causes) == 0 {
		*lines = append(*lines, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("at %s: validation failed", location)
}
