package jobdescriptions

import (
	"context"
	"time"

	"jd-backend/internal/llm"
	"jd-backend/internal/normalize"
	"jd-backend/internal/schema"
	"jd-backend/internal/shared/metrics"
	"jd-backend/internal/shared/telemetry"
)

// Enhancer expands a basic job record into an enhanced record and maps it
// onto the destination form.
type Enhancer struct {
	LLM llm.Client
	Now func() time.Time
}

// NewEnhancer constructs an Enhancer using the wall clock.
func NewEnhancer(client llm.Client) *Enhancer {
	return &Enhancer{LLM: client, Now: time.Now}
}

type enhanceInput struct {
	JobTitle          string
	JobDescription    string
	IndustryName      string
	RequiredSkills    []string
	MinWorkExperience int
}

// parseEnhanceInput reads a basic record or any partial mapping of it.
func parseEnhanceInput(in map[string]any) enhanceInput {
	rec := normalize.RepairKeys(in)
	out := enhanceInput{
		JobTitle:       normalize.Text(rec["job_title"]),
		JobDescription: normalize.Text(rec["job_description"]),
		IndustryName:   normalize.Text(rec["industry_name"]),
		RequiredSkills: normalize.Strings(rec["required_skills"]),
	}
	if n, ok := normalize.Int(rec["min_work_experience"]); ok && n > 0 {
		out.MinWorkExperience = n
	}
	return out
}

// Enhance returns a record conforming to schema.Enhancement.
func (e *Enhancer) Enhance(ctx context.Context, basic map[string]any) (map[string]any, error) {
	metrics.IncEnhance()
	in := parseEnhanceInput(basic)
	telemetry.Info("jd.enhance.start", map[string]any{
		"job_title":     in.JobTitle,
		"industry_name": in.IndustryName,
		"skills":        len(in.RequiredSkills),
	})

	system, user := buildEnhancePrompts(e.now(), in)
	raw, err := e.LLM.ExtractWithSchema(llm.WithStage(ctx, stageEnhance), system, user, schema.Enhancement)
	if err != nil {
		metrics.IncEnhanceFailed()
		logStageError(stageEnhance, "", err)
		return nil, err
	}

	rec, err := normalize.Normalize(raw, schema.Enhancement)
	if err != nil {
		metrics.IncEnhanceFailed()
		logStageError(stageEnhance, "", err)
		return nil, err
	}
	return rec, nil
}

// ProcessJobDescription enhances basic and maps the result to the
// destination form.
func (e *Enhancer) ProcessJobDescription(ctx context.Context, basic map[string]any) (EnhancementResult, error) {
	enhanced, err := e.Enhance(ctx, basic)
	if err != nil {
		return EnhancementResult{}, err
	}
	return EnhancementResult{
		EnhancedJD:  enhanced,
		JobFormData: MapToDestination(enhanced),
	}, nil
}

func (e *Enhancer) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}
