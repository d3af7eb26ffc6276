// Package llm abstracts the language-model providers used by the mapping and
// tagging agents. The tagging core never touches this package; providers are
// orchestration-layer collaborators.
package llm

import "context"

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats.
	AdaptInstructions(rawInstructions string) string
}
