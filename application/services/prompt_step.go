package services

import (
	"context"
	"encoding/json"
	"fmt"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/domain"
	"strings"
	"unicode/utf8"
)

const defaultTemperature = 0.7

// promptStep is a GenerationStep backed by one language-model call whose
// JSON answer decodes into T.
type promptStep[T any] struct {
	name        string
	requires    []domain.Field
	produces    domain.Field
	system      string
	temperature float64
	logger      outbound.LoggerPort
	completer   outbound.CompletionPort
	buildPrompt func(ctx context.Context, blog domain.BlogContext) (string, error)
	apply       func(blog domain.BlogContext, out T) domain.BlogContext
}

func (s *promptStep[T]) Name() string {
	return s.name
}

func (s *promptStep[T]) Requires() []domain.Field {
	return s.requires
}

func (s *promptStep[T]) Produces() domain.Field {
	return s.produces
}

func (s *promptStep[T]) Run(ctx context.Context, blog domain.BlogContext) (domain.BlogContext, error) {
	for _, field := range s.requires {
		if !blog.Has(field) {
			return blog, fmt.Errorf("%s: missing input %s", s.name, field)
		}
	}

	prompt, err := s.buildPrompt(ctx, blog)
	if err != nil {
		return blog, fmt.Errorf("%s: build prompt: %w", s.name, err)
	}

	var schema T
	raw, err := s.completer.Complete(ctx, outbound.CompletionRequest{
		Task:        s.name,
		System:      s.system,
		Prompt:      prompt,
		Schema:      schema,
		Temperature: s.temperature,
	})
	if err != nil {
		return blog, err
	}

	out, err := decodeAnswer[T](raw)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to decode model answer", map[string]interface{}{
			"step": s.name,
			"raw":  truncate(raw, 500),
		})
		return blog, fmt.Errorf("%s: %w", s.name, err)
	}

	return s.apply(blog, out), nil
}

func decodeAnswer[T any](raw string) (T, error) {
	var out T
	cleaned := stripFences(raw)
	if cleaned == "" {
		return out, fmt.Errorf("model returned an empty answer")
	}
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return out, fmt.Errorf("parse model answer: %w", err)
	}
	return out, nil
}

// stripFences removes markdown code fences around a JSON answer.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit] + "..."
}

func toJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
