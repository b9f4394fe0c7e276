package config

import (
	"fmt"
	"os"
)

type GptConfig struct {
	// ApiUrl is the base URL for the SDK client and the full chat completions
	// URL for the streaming client.
	ApiUrl string
	ApiKey string
	Model  string
}

func GetGptConfig() (*GptConfig, error) {
	model := os.Getenv("GPT_MODEL")
	if model == "" {
		return nil, fmt.Errorf("GPT_MODEL must be set")
	}
	apiKey := os.Getenv("GPT_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GPT_API_KEY must be set")
	}
	return &GptConfig{
		ApiUrl: os.Getenv("GPT_API_URL"),
		ApiKey: apiKey,
		Model:  model,
	}, nil
}

// GetStreamingGptConfig is GetGptConfig for the streaming client, which has
// no default endpoint.
func GetStreamingGptConfig() (*GptConfig, error) {
	conf, err := GetGptConfig()
	if err != nil {
		return nil, err
	}
	if conf.ApiUrl == "" {
		return nil, fmt.Errorf("GPT_API_URL must be set")
	}
	return conf, nil
}
