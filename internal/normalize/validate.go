package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"jd-backend/internal/schema"
)

// ErrSchemaValidationFailed marks a record that stays invalid after backfill.
var ErrSchemaValidationFailed = errors.New("schema validation failed")

// ValidationError lists the fields that remained missing or mistyped.
type ValidationError struct {
	Schema string
	Fields []string
	Cause  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: invalid fields [%s]", ErrSchemaValidationFailed, e.Schema, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrSchemaValidationFailed
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

type validator struct {
	spec     schema.Spec
	compiled *jsonschema.Schema
}

func newValidator(spec schema.Spec) (*validator, error) {
	b, err := json.Marshal(spec.JSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	url := spec.Name + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &validator{spec: spec, compiled: compiled}, nil
}

// validate returns the offending field names, or nil when rec conforms.
func (v *validator) validate(rec map[string]any) ([]string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	verr := v.compiled.Validate(doc)
	if verr == nil {
		return nil, nil
	}

	seen := map[string]bool{}
	for _, f := range v.spec.Required() {
		if _, ok := rec[f.Name]; !ok {
			seen[f.Name] = true
		}
	}
	var ve *jsonschema.ValidationError
	if errors.As(verr, &ve) {
		collectInstanceFields(ve, seen)
	}
	fields := make([]string, 0, len(seen))
	for name := range seen {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	if len(fields) == 0 {
		fields = []string{"(root)"}
	}
	return fields, verr
}

func collectInstanceFields(ve *jsonschema.ValidationError, seen map[string]bool) {
	if len(ve.Causes) == 0 {
		loc := strings.TrimPrefix(ve.InstanceLocation, "/")
		if loc != "" {
			if i := strings.Index(loc, "/"); i >= 0 {
				loc = loc[:i]
			}
			seen[loc] = true
		}
		return
	}
	for _, cause := range ve.Causes {
		collectInstanceFields(cause, seen)
	}
}
