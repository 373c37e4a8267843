package normalize

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"jd-backend/internal/schema"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return out
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "jobTitle", want: "job_title"},
		{in: "JobTitle", want: "job_title"},
		{in: "job_title", want: "job_title"},
		{in: "minWorkExperience", want: "min_work_experience"},
		{in: "KPIs", want: "k_p_is"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := SnakeCase(tt.in); got != tt.want {
			t.Fatalf("SnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairKeysRecursesIntoMapsAndLists(t *testing.T) {
	raw := decode(t, `{"workModel":{"officeDays":3},"stakeHolders":[{"firstName":"A"},"plain"]}`)
	got := RepairKeys(raw)

	nested, ok := got["work_model"].(map[string]any)
	if !ok {
		t.Fatalf("work_model not repaired: %#v", got)
	}
	if _, ok := nested["office_days"]; !ok {
		t.Fatalf("nested key not repaired: %#v", nested)
	}
	list := got["stake_holders"].([]any)
	if _, ok := list[0].(map[string]any)["first_name"]; !ok {
		t.Fatalf("list map not repaired: %#v", list[0])
	}
	if list[1] != "plain" {
		t.Fatalf("scalar list item changed: %#v", list[1])
	}
	if _, ok := raw["workModel"]; !ok {
		t.Fatalf("input was mutated")
	}
}

func TestRepairKeysIsIdempotent(t *testing.T) {
	raw := decode(t, `{"jobTitle":"SWE","nested":{"innerKey":[{"deepKey":1}]},"already_snake":true}`)
	once := RepairKeys(raw)
	twice := RepairKeys(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("repair not idempotent:\n%#v\n%#v", once, twice)
	}
	snake := decode(t, `{"job_title":"SWE","industry_name":"Tech","required_skills":["Go"]}`)
	if !reflect.DeepEqual(RepairKeys(snake), snake) {
		t.Fatalf("snake_case mapping changed")
	}
}

func TestRepairKeysPrefersCanonicalOnCollision(t *testing.T) {
	raw := map[string]any{"jobTitle": "camel", "job_title": "snake"}
	got := RepairKeys(raw)
	if got["job_title"] != "snake" {
		t.Fatalf("expected canonical key to win, got %v", got["job_title"])
	}
}

func TestRepairKeysLexicallyFirstWinsAmongNonCanonical(t *testing.T) {
	raw := map[string]any{"jobTitle": "lower camel", "JobTitle": "upper camel"}
	for i := 0; i < 10; i++ {
		got := RepairKeys(raw)
		if got["job_title"] != "upper camel" {
			t.Fatalf("expected JobTitle to win, got %v", got["job_title"])
		}
		if len(got) != 1 {
			t.Fatalf("expected a single key, got %#v", got)
		}
	}
}

func TestResolveAliasesNeverOverwrites(t *testing.T) {
	raw := map[string]any{"industry": "Banking", "industry_name": "Fintech"}
	got := ResolveAliases(raw)
	if got["industry_name"] != "Fintech" {
		t.Fatalf("canonical value overwritten: %v", got["industry_name"])
	}
}

func TestResolveAliasesFirstWriterWinsInTableOrder(t *testing.T) {
	raw := map[string]any{"key_metrics": []any{"later"}, "kpis": []any{"first"}}
	got := ResolveAliases(raw)
	if !reflect.DeepEqual(got["performance_indicators"], []any{"first"}) {
		t.Fatalf("expected kpis to win, got %#v", got["performance_indicators"])
	}
}

func TestCoerceShapes(t *testing.T) {
	raw := decode(t, `{"required_qualifications":["BSc","3 years"],"legal_eligibility":"Citizen","skills_priority":"Go, SQL , ,Kafka"}`)
	got := CoerceShapes(raw)
	if got["required_qualifications"] != "BSc\n3 years" {
		t.Fatalf("unexpected qualifications: %#v", got["required_qualifications"])
	}
	if got["legal_eligibility"] != "Citizen" {
		t.Fatalf("string text field changed: %#v", got["legal_eligibility"])
	}
	if !reflect.DeepEqual(got["skills_priority"], []string{"Go", "SQL", "Kafka"}) {
		t.Fatalf("unexpected skills_priority: %#v", got["skills_priority"])
	}
}

func TestSynthesizeRequiredSkills(t *testing.T) {
	raw := decode(t, `{"hard_skills":["Go","SQL"],"soft_skills":["Mentoring","Go"]}`)
	got := SynthesizeRequiredSkills(raw)
	want := []string{"Go", "SQL", "Mentoring", "Go"}
	if !reflect.DeepEqual(got["required_skills"], want) {
		t.Fatalf("required_skills = %#v, want %#v", got["required_skills"], want)
	}

	present := map[string]any{"required_skills": []any{"Rust"}, "hard_skills": []any{"Go"}}
	if !reflect.DeepEqual(SynthesizeRequiredSkills(present)["required_skills"], []any{"Rust"}) {
		t.Fatalf("existing required_skills replaced")
	}
}

func TestNormalizeExtractionScenario(t *testing.T) {
	raw := decode(t, `{"jobTitle": "SWE", "industryName": "Tech", "requiredSkills": ["Go","Rust"]}`)
	got, err := Normalize(raw, schema.Extraction)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := map[string]any{
		"job_title":           "SWE",
		"industry_name":       "Tech",
		"required_skills":     []string{"Go", "Rust"},
		"job_description":     "Not specified",
		"min_work_experience": 0,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %#v\nwant %#v", got, want)
	}
}

func TestNormalizeAliasForOptionalField(t *testing.T) {
	raw := decode(t, `{"job_title":"SRE","industry_name":"Cloud","role_summary":"Keeps things up","responsibilities":["On-call"],"required_skills":["Linux"],"performance_indicators":["MTTR"],"qualifications":"3 years required"}`)
	got, err := Normalize(raw, schema.Enhancement)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got["required_qualifications"] != "3 years required" {
		t.Fatalf("required_qualifications = %#v", got["required_qualifications"])
	}
	if _, ok := got["qualifications"]; ok {
		t.Fatalf("alias key should not survive projection")
	}
}

func TestNormalizeBackfillIsTotal(t *testing.T) {
	for _, spec := range []schema.Spec{schema.Extraction, schema.Enhancement} {
		got, err := Normalize(map[string]any{}, spec)
		if err != nil {
			t.Fatalf("%s: Normalize(empty): %v", spec.Name, err)
		}
		for _, f := range spec.Required() {
			if !reflect.DeepEqual(got[f.Name], schema.Default(f.Kind)) {
				t.Fatalf("%s: %s = %#v, want default", spec.Name, f.Name, got[f.Name])
			}
		}
		if len(got) != len(spec.Fields) {
			t.Fatalf("%s: expected every field present, got %d of %d", spec.Name, len(got), len(spec.Fields))
		}
	}
}

func TestNormalizeCoercesExperience(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "float", raw: `{"min_work_experience": 5}`, want: 5},
		{name: "string", raw: `{"min_work_experience": "3-5 years"}`, want: 3},
		{name: "fractional", raw: `{"min_work_experience": 2.5}`, want: 2},
		{name: "alias", raw: `{"experience": "7+"}`, want: 7},
		{name: "unparseable", raw: `{"min_work_experience": "not stated"}`, want: 0},
		{name: "null", raw: `{"min_work_experience": null}`, want: 0},
		{name: "negative", raw: `{"min_work_experience": -1}`, want: 0},
		{name: "negative string", raw: `{"min_work_experience": "-2 years"}`, want: 0},
		{name: "negative fraction", raw: `{"min_work_experience": -0.5}`, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(decode(t, tt.raw), schema.Extraction)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got["min_work_experience"] != tt.want {
				t.Fatalf("min_work_experience = %#v, want %d", got["min_work_experience"], tt.want)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	raw := decode(t, `{"jobTitle":"SWE","industry":"Tech","hard_skills":["Go"]}`)
	before, _ := json.Marshal(raw)
	if _, err := Normalize(raw, schema.Extraction); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	after, _ := json.Marshal(raw)
	if string(before) != string(after) {
		t.Fatalf("input mutated:\n%s\n%s", before, after)
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	raw := decode(t, `{"jobTitle":"A","job_title":"B","industry":"X","industryName":"Y","kpis":["k"],"keyMetrics":["m"]}`)
	first, err := Normalize(raw, schema.Enhancement)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := Normalize(raw, schema.Enhancement)
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("non-deterministic result:\n%#v\n%#v", first, again)
		}
	}
	if first["job_title"] != "B" || first["industry_name"] != "Y" {
		t.Fatalf("unexpected precedence: %#v", first)
	}
}

func TestNormalizeFailsOnMistypedRequiredField(t *testing.T) {
	raw := decode(t, `{"job_title":{"text":"SWE"},"job_description":"d","industry_name":"Tech"}`)
	_, err := Normalize(raw, schema.Extraction)
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if !errors.Is(err, ErrSchemaValidationFailed) {
		t.Fatalf("expected ErrSchemaValidationFailed, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !reflect.DeepEqual(verr.Fields, []string{"job_title"}) {
		t.Fatalf("fields = %v", verr.Fields)
	}
}
