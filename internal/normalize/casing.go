package normalize

import (
	"sort"
	"strings"
)

// SnakeCase inserts an underscore before every non-leading ASCII capital and
// lowercases the result. Keys that are already snake_case come back unchanged.
func SnakeCase(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// RepairKeys returns a copy of rec with every key snake_cased, recursing into
// nested maps and maps held in lists. When two keys collapse to the same name,
// the one already written in canonical form wins; otherwise the lexically
// first original key wins.
func RepairKeys(rec map[string]any) map[string]any {
	if rec == nil {
		return map[string]any{}
	}
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(rec))
	for _, k := range keys {
		if SnakeCase(k) == k {
			out[k] = repairValue(rec[k])
		}
	}
	for _, k := range keys {
		snake := SnakeCase(k)
		if snake == k {
			continue
		}
		if _, exists := out[snake]; exists {
			continue
		}
		out[snake] = repairValue(rec[k])
	}
	return out
}

func repairValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return RepairKeys(t)
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			if m, ok := item.(map[string]any); ok {
				items[i] = RepairKeys(m)
				continue
			}
			items[i] = item
		}
		return items
	default:
		return v
	}
}
