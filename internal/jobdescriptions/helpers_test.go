package jobdescriptions

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"jd-backend/internal/llm"
	"jd-backend/internal/schema"
)

type llmCall struct {
	Stage  string
	System string
	User   string
	Schema string
}

// fakeLLM answers by schema name and records every call.
type fakeLLM struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     []llmCall
}

func (f *fakeLLM) ExtractWithSchema(ctx context.Context, systemPrompt, userPrompt string, spec schema.Spec) (map[string]any, error) {
	f.mu.Lock()
	f.calls = append(f.calls, llmCall{
		Stage:  llm.StageFromContext(ctx),
		System: systemPrompt,
		User:   userPrompt,
		Schema: spec.Name,
	})
	f.mu.Unlock()

	if err := f.errs[spec.Name]; err != nil {
		return nil, err
	}
	return llm.ParseObject(f.responses[spec.Name])
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

func decodeJSON(t *testing.T, raw string) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return out
}

const enhancedReply = `{
  "jobTitle": "Senior Backend Engineer",
  "industry_name": "Healthcare Software",
  "summary": "Owns the claims platform.",
  "responsibilities": ["Design APIs", "Review code"],
  "kpis": ["p99 latency under 200ms"],
  "hardSkills": ["Go", "PostgreSQL"],
  "soft_skills": ["Mentoring"],
  "qualifications": ["BSc Computer Science", "5 years backend experience"],
  "work_model": "Hybrid",
  "min_work_experience": 5
}`
