package inbound

import (
	"context"
	"seo-blog-generator/domain"
)

// StageListener is notified after every state-machine transition of a run.
type StageListener func(event domain.StageEvent)

type RunPipelineParams struct {
	RunID   string
	Request domain.PipelineRequest
	// OnStage may be nil.
	OnStage StageListener
}

type BlogPipelinePort interface {
	Run(ctx context.Context, params RunPipelineParams) (*domain.PipelineResult, error)
}
