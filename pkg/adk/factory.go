package adk

import (
	"context"
	"fmt"
)

// SupportedProviders lists the provider names accepted by NewProvider.
var SupportedProviders = []string{"gemini", "openai", "anthropic"}

// NewProvider builds the LLM backend for the assistant. Gemini is the
// only provider with full tool-calling support wired in; the others
// can list models and are selectable from the config wizard.
func NewProvider(ctx context.Context, providerName, apiKey, modelName string) (LLMProvider, error) {
	switch providerName {
	case "gemini":
		return NewGeminiProvider(ctx, apiKey, modelName)
	case "openai":
		return NewOpenAIProvider(apiKey, modelName), nil
	case "anthropic":
		return NewAnthropicProvider(apiKey, modelName), nil
	}
	return nil, fmt.Errorf("unknown provider %q (supported: %v)", providerName, SupportedProviders)
}
