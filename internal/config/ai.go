package config

import "os"

// AIConfig holds the generation service settings. The endpoint speaks the
// OpenAI chat-completions protocol (Azure deployment style).
type AIConfig struct {
	APIKey      string  `json:"-"` // Never serialize
	Endpoint    string  `json:"endpoint"`
	Deployment  string  `json:"deployment"`
	APIVersion  string  `json:"apiVersion"`
	TimeoutMS   int     `json:"timeoutMs"`
	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
}

// DefaultAIConfig returns the default generation configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		Endpoint:    os.Getenv("OPENAI_ENDPOINT"),
		Deployment:  getEnvOrDefault("OPENAI_DEPLOYMENT", "gpt-4o"),
		APIVersion:  getEnvOrDefault("OPENAI_API_VERSION", "2025-01-01-preview"),
		TimeoutMS:   30000, // 30 second default timeout
		MaxTokens:   1000,
		Temperature: 0.7,
	}
}

// IsEnabled returns true if the generation service is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != "" && c.Endpoint != ""
}

// ChatCompletionsURL returns the full endpoint for the configured deployment
func (c *AIConfig) ChatCompletionsURL() string {
	return c.Endpoint + "/openai/deployments/" + c.Deployment + "/chat/completions?api-version=" + c.APIVersion
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
