package config

import "os"

type MockConfig struct {
	// AnswersFile overrides the built-in canned answers per task.
	AnswersFile string
	// TranscriptDir holds <video_id>.txt files. Empty serves a built-in transcript.
	TranscriptDir string
}

func GetMockConfig() *MockConfig {
	return &MockConfig{
		AnswersFile:   os.Getenv("MOCK_ANSWERS_FILE"),
		TranscriptDir: os.Getenv("MOCK_TRANSCRIPT_DIR"),
	}
}
