package domain

import (
	"errors"
	"fmt"
)

// TranscriptFailureSentinel marks a transcript fetch that exhausted its retries.
const TranscriptFailureSentinel = "Failed after multiple retries"

const VideoIDNotFoundMessage = "Could not extract video ID from URL"

var (
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
	ErrStepContract          = errors.New("generation step contract violated")
)

type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StepError tags a collaborator failure with the step that raised it. Its
// message is the cause's message, unchanged. Stack is the pipeline
// goroutine's stack at the point of failure.
type StepError struct {
	Step  string
	Err   error
	Stack []byte
}

func (e *StepError) Error() string {
	return e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func NewStepContractError(step string, field Field) error {
	return &StepError{
		Step: step,
		Err:  fmt.Errorf("%w: step %s did not produce %s", ErrStepContract, step, field),
	}
}
