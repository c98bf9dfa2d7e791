package adk

import (
	"context"
)

// AnthropicProvider is a stub backend: it supports model selection in
// the config wizard but does not implement chat generation.
type AnthropicProvider struct {
	APIKey string
	Model  string
}

func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	if model == "" {
		model = "claude-sonnet-4-5"
	}
	return &AnthropicProvider{APIKey: apiKey, Model: model}
}

// ListModels returns a static list; the Anthropic API has no model
// listing endpoint to query.
func (p *AnthropicProvider) ListModels(ctx context.Context) ([]string, error) {
	return []string{
		"claude-sonnet-4-5",
		"claude-opus-4-5",
		"claude-haiku-4-5",
	}, nil
}

func (p *AnthropicProvider) GenerateResponse(ctx context.Context, history []Message, tools []Tool) (string, *ToolCall, error) {
	return "The anthropic provider supports model selection only; use gemini for the interactive assistant.", nil, nil
}
