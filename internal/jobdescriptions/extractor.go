package jobdescriptions

import (
	"context"
	"time"

	"jd-backend/internal/extract"
	"jd-backend/internal/llm"
	"jd-backend/internal/normalize"
	"jd-backend/internal/schema"
	"jd-backend/internal/shared/metrics"
	"jd-backend/internal/shared/telemetry"
)

const (
	stageExtract = "extract"
	stageEnhance = "enhance"
)

// Extractor produces a basic job record from a document.
type Extractor struct {
	LLM llm.Client
	Now func() time.Time
}

// NewExtractor constructs an Extractor using the wall clock.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{LLM: client, Now: time.Now}
}

// Extract reads the document text and extracts a record conforming to
// schema.Extraction. Collaborator errors are returned unchanged.
func (e *Extractor) Extract(ctx context.Context, data []byte, fileName string) (map[string]any, error) {
	text, err := extract.FromFile(ctx, data, fileName)
	if err != nil {
		metrics.IncExtract()
		metrics.IncExtractFailed()
		logStageError(stageExtract, fileName, err)
		return nil, err
	}
	return e.FromText(ctx, text, fileName)
}

// FromText extracts a record from document text that has already been read.
func (e *Extractor) FromText(ctx context.Context, text string, fileName string) (map[string]any, error) {
	metrics.IncExtract()
	telemetry.Info("jd.extract.start", map[string]any{
		"file_name":  fileName,
		"text_bytes": len(text),
	})

	system, user := buildExtractPrompts(e.now(), text)
	raw, err := e.LLM.ExtractWithSchema(llm.WithStage(ctx, stageExtract), system, user, schema.Extraction)
	if err != nil {
		metrics.IncExtractFailed()
		logStageError(stageExtract, fileName, err)
		return nil, err
	}

	rec, err := normalize.Normalize(raw, schema.Extraction)
	if err != nil {
		metrics.IncExtractFailed()
		logStageError(stageExtract, fileName, err)
		return nil, err
	}

	telemetry.Info("jd.extract.complete", map[string]any{
		"file_name": fileName,
		"job_title": rec["job_title"],
	})
	return rec, nil
}

func (e *Extractor) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func logStageError(stage, fileName string, err error) {
	fields := map[string]any{
		"stage": stage,
		"error": err,
	}
	if fileName != "" {
		fields["file_name"] = fileName
	}
	telemetry.Error("jd."+stage+".failed", fields)
}
