// Package schema declares the target record shapes requested from the model
// and enforced by the normalizer.
package schema

// Kind is the value type of a field.
type Kind int

const (
	String Kind = iota
	Int
	StringList
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "integer"
	case StringList:
		return "list<string>"
	default:
		return "string"
	}
}

// NotSpecified is the backfill value for missing required string fields.
const NotSpecified = "Not specified"

// Field is a single named field of a Spec.
type Field struct {
	Name        string
	Kind        Kind
	Required    bool
	Description string
}

// Spec is a statically declared record shape.
type Spec struct {
	Name   string
	Fields []Field
}

// FieldNames returns field names in declaration order.
func (s Spec) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Field looks up a field by name.
func (s Spec) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Required returns the required fields in declaration order.
func (s Spec) Required() []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// Default is the value injected for a missing required field.
func Default(k Kind) any {
	switch k {
	case Int:
		return 0
	case StringList:
		return []string{}
	default:
		return NotSpecified
	}
}

// Zero is the value materialized for a missing optional field.
func Zero(k Kind) any {
	switch k {
	case Int:
		return 0
	case StringList:
		return []string{}
	default:
		return ""
	}
}

// JSONSchema renders the spec as a JSON Schema object.
func (s Spec) JSONSchema() map[string]any {
	props := make(map[string]any, len(s.Fields))
	required := make([]any, 0, len(s.Fields))
	for _, f := range s.Fields {
		prop := map[string]any{}
		switch f.Kind {
		case Int:
			prop["type"] = "integer"
		case StringList:
			prop["type"] = "array"
			prop["items"] = map[string]any{"type": "string"}
		default:
			prop["type"] = "string"
		}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		props[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                s.Name,
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": true,
	}
}
