package adapters

import (
	"context"
	"fmt"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/config"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiCompleter struct {
	logger outbound.LoggerPort
	client *genai.Client
	model  string
}

// NewGeminiCompleter opens the Gemini client once at startup. The caller
// owns the returned close function.
func NewGeminiCompleter(ctx context.Context, geminiConfig *config.GeminiConfig,
	logger outbound.LoggerPort) (outbound.CompletionPort, func() error, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(geminiConfig.ApiKey))
	if err != nil {
		return nil, nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiCompleter{
		logger: logger,
		client: client,
		model:  geminiConfig.Model,
	}, client.Close, nil
}

func (g *geminiCompleter) Complete(ctx context.Context, req outbound.CompletionRequest) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(float32(req.Temperature))
	model.ResponseMIMEType = "application/json"
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	prompt := req.Prompt
	if req.Schema != nil {
		prompt = prompt + "\n\n" + schemaInstruction(req.Schema)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.ErrorWithFields(err, "Gemini request failed", map[string]interface{}{"task": req.Task})
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("Gemini returned empty response. Finish reason: %v", resp.Candidates[0].FinishReason)
	}

	return sb.String(), nil
}
