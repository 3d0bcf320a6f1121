package llm

import (
	"os"
	"strconv"
)

// loads generator configuration from environment variables.
// Returns nil when no API key is configured; the caller decides whether that
// is fatal (here it is not - the server answers 503 until a key exists).
func NewGeneratorFromEnv() TextGenerator {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil
	}

	model := os.Getenv("GENERATOR_MODEL")
	if model == "" {
		model = defaultOpenAIModel
	}

	maxTokens := 0
	if maxTokensStr := os.Getenv("GENERATOR_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			maxTokens = val
		}
	}

	temperature := float32(0)
	if tempStr := os.Getenv("GENERATOR_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temperature = float32(val)
		}
	}

	return NewOpenAIGenerator(OpenAIConfig{
		APIKey:      apiKey,
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
}
