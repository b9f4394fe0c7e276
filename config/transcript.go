package config

import (
	"fmt"
	"os"
	"time"
)

type TranscriptConfig struct {
	ApiUrl         string
	Language       string
	MaxRetries     int
	InitialBackoff time.Duration
	MaxElapsedTime time.Duration
	RequestTimeout time.Duration
}

func GetTranscriptConfig() (*TranscriptConfig, error) {
	apiUrl := os.Getenv("TRANSCRIPT_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("TRANSCRIPT_API_URL must be set")
	}
	retries, err := getEnvInt("TRANSCRIPT_MAX_RETRIES", 3)
	if err != nil {
		return nil, err
	}
	if retries == 0 {
		retries = 1
	}
	backoffMs, err := getEnvInt("TRANSCRIPT_INITIAL_BACKOFF_MS", 1000)
	if err != nil {
		return nil, err
	}

	return &TranscriptConfig{
		ApiUrl:         apiUrl,
		Language:       getEnvDefault("TRANSCRIPT_LANGUAGE", "en"),
		MaxRetries:     retries,
		InitialBackoff: time.Duration(backoffMs) * time.Millisecond,
		MaxElapsedTime: time.Minute,
		RequestTimeout: 30 * time.Second,
	}, nil
}
