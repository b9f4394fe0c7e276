package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/config"
	"strings"

	"github.com/donovanhide/eventsource"
)

const DoneSignal = "[DONE]"
const MaxRetries = 3

type chatGptRequest struct {
	Stream         bool                   `json:"stream"`
	Model          string                 `json:"model"`
	Temperature    float64                `json:"temperature"`
	Messages       []chatGptMessage       `json:"messages"`
	ResponseFormat *chatGptResponseFormat `json:"response_format,omitempty"`
}

type chatGptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatGptResponseFormat struct {
	Type string `json:"type"`
}

type chatGptChunkBody struct {
	Choices []chatGptResponseChoice `json:"choices"`
}

type chatGptResponseChoice struct {
	Index int `json:"index"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

// streamCompleter talks to any OpenAI-compatible chat completions endpoint
// over server-sent events.
type streamCompleter struct {
	logger     outbound.LoggerPort
	gptConfig  *config.GptConfig
	workerPool outbound.TaskDispatcher
}

func NewStreamCompleter(gptConfig *config.GptConfig, workerPool outbound.TaskDispatcher, logger outbound.LoggerPort) outbound.CompletionPort {
	return &streamCompleter{
		logger:     logger,
		gptConfig:  gptConfig,
		workerPool: workerPool,
	}
}

func (s *streamCompleter) Complete(ctx context.Context, req outbound.CompletionRequest) (string, error) {
	tokenCh, errCh := s.stream(ctx, req)

	var builder strings.Builder
	for {
		select {
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			return "", err
		case token, ok := <-tokenCh:
			if !ok {
				// errCh is closed before tokenCh, so this never blocks.
				if errCh != nil {
					if err, ok := <-errCh; ok {
						return "", err
					}
				}
				return builder.String(), nil
			}
			builder.WriteString(token)
		}
	}
}

func (s *streamCompleter) stream(ctx context.Context, req outbound.CompletionRequest) (<-chan string, <-chan error) {
	out := make(chan string)
	errCh := make(chan error, 1)

	retryCount := 0

	newCtx, cancel := context.WithCancel(ctx)

	err := s.workerPool.Submit(func() {
		defer func() {
			cancel()
			close(errCh)
			close(out)
		}()
		httpReq, err := s.createRequest(newCtx, req)
		if err != nil {
			s.logger.Error(err, "Failed to create HTTP request for completion stream")
			errCh <- err
			return
		}

		stream, err := eventsource.SubscribeWithRequest("", httpReq)
		if err != nil {
			s.logger.Error(err, "Failed to subscribe to completion stream")
			errCh <- err
			return
		}
		defer stream.Close()

		for {
			select {
			case <-newCtx.Done():
				errCh <- newCtx.Err()
				return
			case ev, ok := <-stream.Events:
				if !ok {
					return
				}
				if ev.Data() == DoneSignal {
					return
				}
				payload, err := s.extractPayload(ev)
				if err != nil {
					errCh <- err
					return
				}
				select {
				case out <- payload:
				case <-newCtx.Done():
					errCh <- newCtx.Err()
					return
				}
				retryCount = 0
			case err := <-stream.Errors:
				if err == io.EOF {
					s.logger.Debug("Completion stream closed")
					return
				} else if retryCount < MaxRetries {
					s.logger.ErrorWithFields(err, "Error occurred during streaming, retrying", map[string]interface{}{
						"retry_count": retryCount,
						"task":        req.Task,
					})
					retryCount++
					continue
				}
				s.logger.Error(err, "Error occurred during streaming, max retries reached")
				errCh <- err
				return
			}
		}
	})
	if err != nil {
		s.logger.Error(err, "Failed to submit task to worker pool")
		cancel()
		errCh <- err
		close(errCh)
		close(out)
	}

	return out, errCh
}

func (s *streamCompleter) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody chatGptChunkBody
	err := json.Unmarshal([]byte(event.Data()), &chunkBody)
	if err != nil {
		s.logger.Error(err, "Failed to unmarshal event data")
		return "", err
	}
	if len(chunkBody.Choices) == 0 {
		return "", nil
	}

	return chunkBody.Choices[0].Delta.Content, nil
}

func (s *streamCompleter) createRequest(ctx context.Context, req outbound.CompletionRequest) (*http.Request, error) {
	messages := make([]chatGptMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatGptMessage{Role: "system", Content: req.System})
	}
	prompt := req.Prompt
	var format *chatGptResponseFormat
	if req.Schema != nil {
		prompt = prompt + "\n\n" + schemaInstruction(req.Schema)
		format = &chatGptResponseFormat{Type: "json_object"}
	}
	messages = append(messages, chatGptMessage{Role: "user", Content: prompt})

	promptReq := chatGptRequest{
		Stream:         true,
		Model:          s.gptConfig.Model,
		Temperature:    req.Temperature,
		Messages:       messages,
		ResponseFormat: format,
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		s.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gptConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		s.logger.Error(err, "Failed to create the HTTP request")
		return nil, fmt.Errorf("create completion request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+s.gptConfig.ApiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	return httpReq, nil
}
