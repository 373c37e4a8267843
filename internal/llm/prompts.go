package llm

import (
	_ "embed"
	"strings"

	"jd-backend/internal/schema"
)

//go:embed prompts/schema_info.txt
var schemaInfoTemplate string

const userJSONReminder = "Please return your response as JSON with snake_case field names (using underscores, not camelCase)."

// AugmentSystemPrompt appends the field list of spec and the JSON formatting
// rules to a stage's system prompt.
func AugmentSystemPrompt(systemPrompt string, spec schema.Spec) string {
	info := strings.NewReplacer(
		"{{FIELDS}}", strings.Join(spec.FieldNames(), ", "),
	).Replace(schemaInfoTemplate)
	return strings.TrimSpace(systemPrompt) + "\n\n" + strings.TrimSpace(info) +
		"\n\nEnsure response follows the schema and is formatted as JSON."
}

// AugmentUserPrompt appends the snake_case JSON reminder.
func AugmentUserPrompt(userPrompt string) string {
	return strings.TrimSpace(userPrompt) + "\n\n" + userJSONReminder
}
