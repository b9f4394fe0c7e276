package config

import (
	"fmt"
	"os"
)

type LLMProvider string

const (
	ProviderOpenAI     LLMProvider = "openai"
	ProviderGemini     LLMProvider = "gemini"
	ProviderCompatible LLMProvider = "compatible"
	ProviderMock       LLMProvider = "mock"
)

type LLMConfig struct {
	Provider LLMProvider
	// RequestsPerMinute caps model calls across all runs; 0 disables the limit.
	RequestsPerMinute int
}

func GetLLMConfig() (*LLMConfig, error) {
	provider := LLMProvider(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		return nil, fmt.Errorf("LLM_PROVIDER must be set")
	}
	switch provider {
	case ProviderOpenAI, ProviderGemini, ProviderCompatible, ProviderMock:
	default:
		return nil, fmt.Errorf("LLM_PROVIDER %q is not supported", provider)
	}

	rpm, err := getEnvInt("LLM_REQUESTS_PER_MINUTE", 0)
	if err != nil {
		return nil, err
	}

	return &LLMConfig{
		Provider:          provider,
		RequestsPerMinute: rpm,
	}, nil
}
