package config

import "os"

// GeminiModels defines which Gemini models to use for different analysis tasks
type GeminiModels struct {
	// EssayAnalysis is for holistic essay scoring (content/tone/strengths)
	EssayAnalysis string `json:"essayAnalysis"`

	// Alignment is for prompt-alignment rating (bare numeric answer, needs to be fast)
	Alignment string `json:"alignment"`

	// Suggestions is for revision suggestion generation (quality over speed)
	Suggestions string `json:"suggestions"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey    string       `json:"-"` // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    GeminiModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		Models: GeminiModels{
			EssayAnalysis: getEnvOrDefault("GEMINI_MODEL_ANALYSIS", "gemini-2.0-flash"),
			Alignment:     getEnvOrDefault("GEMINI_MODEL_ALIGNMENT", "gemini-2.5-flash-preview-05-20"),
			Suggestions:   getEnvOrDefault("GEMINI_MODEL_SUGGESTIONS", "gemini-2.0-flash"),
		},
		TimeoutMS: 15000, // 15 second default timeout per round trip
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
