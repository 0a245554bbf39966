package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidationError reports a request that failed schema validation. It is
// rendered as 422 with a FastAPI-style {"detail": ...} body.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// riskRequestSchema mirrors the ranges the web form enforces.
var riskRequestSchema = map[string]any{
	"type":     "object",
	"required": []any{"promedio", "inasistencias", "participacion", "horas_estudio"},
	"properties": map[string]any{
		"promedio":      map[string]any{"type": "number", "minimum": 0, "maximum": 5},
		"inasistencias": map[string]any{"type": "integer", "minimum": 0},
		"participacion": map[string]any{"type": "integer", "minimum": 0},
		"horas_estudio": map[string]any{"type": "number", "minimum": 0},
	},
}

var stressQuerySchema = map[string]any{
	"type":     "object",
	"required": []any{"sueno", "carga", "ansiedad"},
	"properties": map[string]any{
		"sueno":    map[string]any{"type": "integer", "minimum": 0},
		"carga":    map[string]any{"type": "integer", "minimum": 0},
		"ansiedad": map[string]any{"type": "integer", "minimum": 0},
	},
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler expects a parsed JSON value, not Go literals.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	defParsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}

// validateJSON parses raw and validates it against the named schema.
func validateJSON(name string, def map[string]any, raw []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return validateValue(name, def, inst)
}

// validateValue validates an already-decoded value.
func validateValue(name string, def map[string]any, inst any) error {
	compiled, err := compiledSchema(name, def)
	if err != nil {
		return fmt.Errorf("schema %q: %w", name, err)
	}
	if err := compiled.Validate(inst); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
