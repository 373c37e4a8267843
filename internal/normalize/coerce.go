package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"jd-backend/internal/schema"
)

// TextFields are free-text fields that models sometimes return as lists.
var TextFields = []string{
	"required_qualifications",
	"preferred_qualifications",
	"mandatory_certifications",
	"legal_eligibility",
}

// ListFields are list fields that models sometimes return as comma-separated text.
var ListFields = []string{
	"skills_priority",
}

// CoerceShapes joins list-valued TextFields with newlines and splits
// string-valued ListFields on commas.
func CoerceShapes(rec map[string]any) map[string]any {
	out := clone(rec)
	for _, name := range TextFields {
		if items, ok := asStringList(out[name]); ok {
			out[name] = strings.Join(items, "\n")
		}
	}
	for _, name := range ListFields {
		if s, ok := out[name].(string); ok {
			out[name] = splitCommaList(s)
		}
	}
	return out
}

// SynthesizeRequiredSkills fills an absent required_skills with hard_skills
// followed by soft_skills.
func SynthesizeRequiredSkills(rec map[string]any) map[string]any {
	if _, ok := rec["required_skills"]; ok {
		return rec
	}
	hard, hasHard := rec["hard_skills"]
	soft, hasSoft := rec["soft_skills"]
	if !hasHard && !hasSoft {
		return rec
	}
	out := clone(rec)
	skills := []string{}
	if items, ok := asStringList(hard); ok {
		skills = append(skills, items...)
	}
	if items, ok := asStringList(soft); ok {
		skills = append(skills, items...)
	}
	out["required_skills"] = skills
	return out
}

// Project keeps only the fields declared by spec and coerces their scalar
// shapes leniently. Null values and values that cannot represent an integer
// are dropped so they count as absent. Negative integers clamp to 0. Other mismatches are kept as-is and
// left for validation to report.
func Project(rec map[string]any, spec schema.Spec) map[string]any {
	out := make(map[string]any, len(spec.Fields))
	for _, f := range spec.Fields {
		v, ok := rec[f.Name]
		if !ok || v == nil {
			continue
		}
		switch f.Kind {
		case schema.Int:
			if n, ok := asInt(v); ok {
				out[f.Name] = max(n, 0)
			}
		case schema.StringList:
			out[f.Name] = toList(v)
		default:
			out[f.Name] = toText(v)
		}
	}
	return out
}

var leadingInt = regexp.MustCompile(`-?\d+`)

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return int(math.Floor(t)), true
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), true
		}
		if f, err := t.Float64(); err == nil {
			return int(math.Floor(f)), true
		}
		return 0, false
	case string:
		m := leadingInt.FindString(t)
		if m == "" {
			return 0, false
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func toList(v any) any {
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...)
	case []any:
		if items, ok := asStringList(t); ok {
			return items
		}
		return v
	case string:
		if strings.TrimSpace(t) == "" {
			return []string{}
		}
		return []string{t}
	default:
		return v
	}
}

func toText(v any) any {
	switch t := v.(type) {
	case string:
		return t
	case float64, int, int64, bool, json.Number:
		return scalarText(t)
	case []string:
		return strings.Join(t, "\n")
	case []any:
		if items, ok := asStringList(t); ok {
			return strings.Join(items, "\n")
		}
		return v
	default:
		return v
	}
}

func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// asStringList reports whether v is a list of scalars and returns it as strings.
func asStringList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...), true
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			switch item.(type) {
			case nil:
				continue
			case map[string]any, []any:
				return nil, false
			}
			items = append(items, scalarText(item))
		}
		return items, true
	default:
		return nil, false
	}
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
