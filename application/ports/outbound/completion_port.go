package outbound

import "context"

type CompletionRequest struct {
	// Task names the prompt; adapters use it as the schema name.
	Task        string
	System      string
	Prompt      string
	Schema      interface{}
	Temperature float64
}

// CompletionPort sends one prompt to a language model and returns the raw
// JSON text of the answer.
type CompletionPort interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
