package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the application.
type Config struct {
	DatabaseURL string
	OpenAIKey   string
	AIModel     string
	AIBaseURL   string
	Debug       bool
}

// Load reads configuration from the environment, with a best-effort .env
// file load first. Everything has a default except the OpenAI key, which
// is only required by the companion chat and checked there.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL: getEnv("MINDSPACE_DB", "mindspace.db"),
		OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
		AIModel:     getEnv("AI_MODEL", ""),
		AIBaseURL:   getEnv("AI_BASE_URL", ""),
		Debug:       getEnvBool("MINDSPACE_DEBUG", false),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
