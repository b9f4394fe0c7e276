package services

import (
	"context"
	"fmt"
	"seo-blog-generator/application/ports/inbound"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/domain"
)

// pooledBlogPipeline runs each pipeline on the worker pool, which caps how
// many runs talk to the language model at once.
type pooledBlogPipeline struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	pipeline   inbound.BlogPipelinePort
}

func NewPooledBlogPipeline(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	pipeline inbound.BlogPipelinePort) inbound.BlogPipelinePort {
	return &pooledBlogPipeline{
		logger:     logger,
		workerPool: workerPool,
		pipeline:   pipeline,
	}
}

type pipelineOutcome struct {
	result *domain.PipelineResult
	err    error
}

func (p *pooledBlogPipeline) Run(ctx context.Context, params inbound.RunPipelineParams) (*domain.PipelineResult, error) {
	done := make(chan pipelineOutcome, 1)

	err := p.workerPool.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				done <- pipelineOutcome{err: fmt.Errorf("pipeline run panicked: %v", r)}
			}
		}()
		result, err := p.pipeline.Run(ctx, params)
		done <- pipelineOutcome{result: result, err: err}
	})
	if err != nil {
		p.logger.Error(err, "Failed to submit pipeline run to worker pool")
		return nil, fmt.Errorf("submit pipeline run: %w", err)
	}

	select {
	case outcome := <-done:
		return outcome.result, outcome.err
	case <-ctx.Done():
		p.logger.WarnWithFields("Pipeline caller went away", map[string]interface{}{
			"run_id": params.RunID,
		})
		return nil, ctx.Err()
	}
}
