package openai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"jd-backend/internal/llm"
	"jd-backend/internal/schema"
	"jd-backend/internal/shared/metrics"
	"jd-backend/internal/shared/telemetry"
)

const (
	defaultTemperature = float32(0.2)
	defaultMaxTokens   = 4000
	defaultTimeout     = 120 * time.Second
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Options configures the OpenAI client.
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client implements llm.Client using OpenAI Chat Completions in JSON mode.
type Client struct {
	api         chatCompleter
	model       string
	temperature float32
	maxTokens   int
}

// NewClient constructs a new OpenAI client.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.Model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg := openai.DefaultConfig(opts.APIKey)
	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		cfg.BaseURL = base
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return newWithCompleter(openai.NewClientWithConfig(cfg), opts.Model), nil
}

func newWithCompleter(api chatCompleter, model string) *Client {
	return &Client{
		api:         api,
		model:       strings.TrimSpace(model),
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
	}
}

// ExtractWithSchema sends one chat completion and decodes the reply as a JSON object.
func (c *Client) ExtractWithSchema(ctx context.Context, systemPrompt, userPrompt string, spec schema.Spec) (map[string]any, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: llm.AugmentSystemPrompt(systemPrompt, spec)},
		{Role: openai.ChatMessageRoleUser, Content: llm.AugmentUserPrompt(userPrompt)},
	}
	req := c.buildRequest(messages)
	stage := llm.StageFromContext(ctx)

	telemetry.Info("llm.request", map[string]any{
		"model":         c.model,
		"stage":         stage,
		"schema":        spec.Name,
		"prompt_sha256": hashPrompt(messages),
	})

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	metrics.ObserveLLMCallMs(metrics.Since(start))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, fmt.Errorf("openai request timeout: %w", err)
		}
		return nil, fmt.Errorf("openai: %w", err)
	}
	logUsage(c.model, stage, resp.Usage)

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai response missing choices")
	}
	choice := resp.Choices[0]
	obj, err := llm.ParseObject(choice.Message.Content)
	if err != nil {
		telemetry.Error("llm.malformed_output", map[string]any{
			"model":         c.model,
			"stage":         stage,
			"finish_reason": string(choice.FinishReason),
			"content_bytes": len(choice.Message.Content),
		})
		return nil, err
	}
	return obj, nil
}

func (c *Client) buildRequest(messages []openai.ChatCompletionMessage) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	// gpt-5 models reject custom sampling and max_tokens.
	if !isGPT5(c.model) {
		req.Temperature = c.temperature
		req.MaxTokens = c.maxTokens
	}
	return req
}

func logUsage(model, stage string, usage openai.Usage) {
	telemetry.Info("llm.usage", map[string]any{
		"model":             model,
		"stage":             stage,
		"prompt_tokens":     usage.PromptTokens,
		"completion_tokens": usage.CompletionTokens,
		"total_tokens":      usage.TotalTokens,
	})
}

func isGPT5(model string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(model)), "gpt-5")
}

func hashPrompt(messages []openai.ChatCompletionMessage) string {
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

var _ llm.Client = (*Client)(nil)
