package adapters

import (
	"context"
	"fmt"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/config"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type openAICompleter struct {
	logger outbound.LoggerPort
	client openai.Client
	model  string
}

func NewOpenAICompleter(gptConfig *config.GptConfig, logger outbound.LoggerPort) outbound.CompletionPort {
	opts := []option.RequestOption{option.WithAPIKey(gptConfig.ApiKey)}
	if gptConfig.ApiUrl != "" {
		opts = append(opts, option.WithBaseURL(gptConfig.ApiUrl))
	}
	return &openAICompleter{
		logger: logger,
		client: openai.NewClient(opts...),
		model:  gptConfig.Model,
	}
}

func (o *openAICompleter) Complete(ctx context.Context, req outbound.CompletionRequest) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       openai.ChatModel(o.model),
		Temperature: openai.Float(req.Temperature),
	}
	if req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        req.Task,
					Description: openai.String("Structured answer for " + req.Task),
					Schema:      schemaFor(req.Schema),
					Strict:      openai.Bool(true),
				},
			},
		}
	}

	chatCompletion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		o.logger.ErrorWithFields(err, "OpenAI request failed", map[string]interface{}{"task": req.Task})
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	content := chatCompletion.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("OpenAI returned empty response. Finish reason: %s", chatCompletion.Choices[0].FinishReason)
	}

	return content, nil
}
