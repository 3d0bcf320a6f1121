package main

import (
	"codeberg.org/socialhub/server/internal/llm"
	"codeberg.org/socialhub/server/internal/logger"
)

// creates and configures all service clients.
// A missing OpenAI key is not fatal: the generation endpoints answer 503
// until a key is configured, everything else keeps working.
func InitializeServices() *Services {
	generator := llm.NewGeneratorFromEnv()

	if generator == nil {
		logger.Warn("OPENAI_API_KEY not set, generation endpoints will answer 503")
	}

	return &Services{
		Generator: generator,
	}
}
