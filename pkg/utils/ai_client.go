package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// AIClientInterface abstracts the generative backend so the assistant
// can run on OpenAI or on Gemini's free tier with the same call sites.
type AIClientInterface interface {
	// Chat returns a plain-text reply for a single user message.
	Chat(ctx context.Context, systemPrompt, userMessage string) (string, error)
	// GenerateJSON forces a JSON-only completion for document generation.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	// GetEmbedding converts text into a vector for similarity search.
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// NewAIClient creates either an OpenAI or Gemini client based on config
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
