package normalize

import (
	"encoding/json"
	"fmt"
)

// Int leniently reads v as a whole number of the kind models emit for
// integer fields ("5", "3-5 years", 4.0).
func Int(v any) (int, bool) {
	return asInt(v)
}

// Text renders v as free text. Lists of scalars are joined with newlines,
// nil is empty and structured values are rendered as JSON.
func Text(v any) string {
	switch t := toText(v).(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// Strings reads v as a list of strings; a lone string becomes a
// one-element list. Anything else yields an empty list.
func Strings(v any) []string {
	if items, ok := toList(v).([]string); ok {
		return items
	}
	return []string{}
}
