package llm

import (
	"context"
	"errors"
)

// ErrUnavailable marks upstream failures that are configuration or quota
// problems on the provider side (missing key, invalid key, exhausted
// credits). Handlers translate it to a 503; the client never retries.
var ErrUnavailable = errors.New("generation service unavailable")

// TextGenerator produces text from a system prompt and user message
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
}

// TextGenerationRequest describes one completion call
type TextGenerationRequest struct {
	SystemPrompt string
	UserMessage  string
	MaxTokens    int     // 0 falls back to the client default
	Temperature  float32 // 0 falls back to the client default
}

// TextGenerationResponse carries the generated text and token accounting
type TextGenerationResponse struct {
	Text  string
	Model string
	Usage Usage
}

// Usage reports token consumption for one call
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
