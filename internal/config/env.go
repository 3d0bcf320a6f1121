package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultDailyLimit = 10

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	baseURL := os.Getenv("BASE_URL")
	sessionSecret := os.Getenv("SESSION_SECRET")
	environment := os.Getenv("ENVIRONMENT")

	// the server starts without an OpenAI key; generation endpoints answer
	// 503 until one is configured
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	if environment == "" {
		environment = "development"
	}

	dailyLimit := defaultDailyLimit
	if limitStr := os.Getenv("DAILY_LIMIT"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val <= 0 {
			return nil, fmt.Errorf("DAILY_LIMIT must be a positive integer, got %q", limitStr)
		}

		dailyLimit = val
	}

	return &Config{
		OpenAIKey:     openaiKey,
		BaseURL:       baseURL,
		SessionSecret: sessionSecret,
		Environment:   environment,
		DailyLimit:    dailyLimit,
	}, nil
}
