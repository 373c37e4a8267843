package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"jd-backend/internal/schema"
)

// Client asks a model for a single JSON object shaped like spec.
// Implementations do not retry; callers own recovery.
type Client interface {
	ExtractWithSchema(ctx context.Context, systemPrompt, userPrompt string, spec schema.Spec) (map[string]any, error)
}

var (
	// ErrMalformedModelOutput is returned when the model reply is not a JSON object.
	ErrMalformedModelOutput = errors.New("malformed model output")
	// ErrNotImplemented is returned by the placeholder client.
	ErrNotImplemented = errors.New("LLM not implemented")
)

type stageKey struct{}

// WithStage tags ctx with the pipeline stage issuing the call, for logs.
func WithStage(ctx context.Context, stage string) context.Context {
	return context.WithValue(ctx, stageKey{}, stage)
}

// StageFromContext returns the stage set by WithStage.
func StageFromContext(ctx context.Context) string {
	stage, _ := ctx.Value(stageKey{}).(string)
	return stage
}

// ParseObject decodes a model reply into a JSON object.
func ParseObject(content string) (map[string]any, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty content", ErrMalformedModelOutput)
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: null object", ErrMalformedModelOutput)
	}
	return out, nil
}

// PlaceholderClient is used when no provider is configured.
type PlaceholderClient struct{}

// ExtractWithSchema returns ErrNotImplemented.
func (PlaceholderClient) ExtractWithSchema(ctx context.Context, systemPrompt, userPrompt string, spec schema.Spec) (map[string]any, error) {
	_ = ctx
	_ = systemPrompt
	_ = userPrompt
	_ = spec
	return nil, ErrNotImplemented
}
