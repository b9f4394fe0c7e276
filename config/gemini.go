package config

import (
	"fmt"
	"os"
)

type GeminiConfig struct {
	ApiKey string
	Model  string
}

func GetGeminiConfig() (*GeminiConfig, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set")
	}

	return &GeminiConfig{
		ApiKey: apiKey,
		Model:  getEnvDefault("GEMINI_MODEL", "gemini-1.5-flash"),
	}, nil
}
