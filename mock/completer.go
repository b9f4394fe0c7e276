package mock_generator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"seo-blog-generator/application/ports/outbound"
	"time"
)

type mockCompleter struct {
	logger  outbound.LoggerPort
	answers map[string]MockAnswer
}

// NewMockCompleter answers every task with a canned JSON object. Answers in
// answersFile, when given, replace the built-in ones per task.
func NewMockCompleter(answersFile string, logger outbound.LoggerPort) (outbound.CompletionPort, error) {
	answers := make(map[string]MockAnswer, len(defaultAnswers))
	for task, answer := range defaultAnswers {
		answers[task] = MockAnswer{Answer: json.RawMessage(answer)}
	}

	if answersFile != "" {
		overrides, err := readAnswersFile(answersFile, logger)
		if err != nil {
			return nil, err
		}
		for task, answer := range overrides {
			answers[task] = answer
		}
	}

	return &mockCompleter{
		logger:  logger,
		answers: answers,
	}, nil
}

func (m *mockCompleter) Complete(ctx context.Context, req outbound.CompletionRequest) (string, error) {
	answer, ok := m.answers[req.Task]
	if !ok {
		return "", fmt.Errorf("no mock answer for task %s", req.Task)
	}

	if answer.Delay > 0 {
		select {
		case <-time.After(time.Duration(answer.Delay) * time.Millisecond):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	m.logger.DebugWithFields("Mock completion", map[string]interface{}{"task": req.Task})
	return string(answer.Answer), nil
}

func readAnswersFile(fileName string, logger outbound.LoggerPort) (map[string]MockAnswer, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			logger.Error(err, "failed to close file")
		}
	}(file)

	var answers map[string]MockAnswer
	if err := json.NewDecoder(file).Decode(&answers); err != nil {
		logger.Error(err, "failed to decode json")
		return nil, err
	}

	return answers, nil
}
