package config

type Config struct {
	OpenAIKey     string
	BaseURL       string
	SessionSecret string
	Environment   string
	DailyLimit    int
}
