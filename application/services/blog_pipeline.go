package services

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"seo-blog-generator/application/ports/inbound"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/domain"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlogSteps holds the collaborators of the pipeline, one per slot. The run
// order is fixed by the pipeline, not by this struct.
type BlogSteps struct {
	SpecificDetails   outbound.GenerationStep
	TopicKeyword      outbound.GenerationStep
	Intro             outbound.GenerationStep
	IntroRefiner      outbound.GenerationStep
	Guide             outbound.GenerationStep
	IssueTroubleshoot outbound.GenerationStep
	Conclusion        outbound.GenerationStep
	CTA               outbound.GenerationStep
	CustomizationTips outbound.GenerationStep
	DomainAligner     outbound.GenerationStep
	Rewriter          outbound.GenerationStep
}

type pipelineSlot struct {
	name     string
	produces domain.Field
	step     outbound.GenerationStep
	assemble func(blog domain.BlogContext) domain.BlogContext
}

func (s BlogSteps) sequence() []pipelineSlot {
	return []pipelineSlot{
		{name: "specific_details", produces: domain.FieldExtractedSection, step: s.SpecificDetails},
		{name: "topic_keyword", produces: domain.FieldExtractedKeywords, step: s.TopicKeyword},
		{name: "combine_keyword_details", produces: domain.FieldKeywordDetails, assemble: domain.BlogContext.WithKeywordDetails},
		{name: "intro", produces: domain.FieldIntroduction, step: s.Intro},
		{name: "refine_intro", produces: domain.FieldRefinedIntro, step: s.IntroRefiner},
		{name: "guide", produces: domain.FieldGuide, step: s.Guide},
		{name: "issue_troubleshoot", produces: domain.FieldIssueTroubleshoot, step: s.IssueTroubleshoot},
		{name: "conclusion", produces: domain.FieldConclusion, step: s.Conclusion},
		{name: "cta", produces: domain.FieldCTA, step: s.CTA},
		{name: "customization_tips", produces: domain.FieldCustomizationTips, step: s.CustomizationTips},
		{name: "combine_sections", produces: domain.FieldCombinedData, assemble: domain.BlogContext.WithCombinedSections},
		{name: "domain_aligned", produces: domain.FieldDomainAlignedCTA, step: s.DomainAligner},
		{name: "rewrite_blog", produces: domain.FieldFinalBlog, step: s.Rewriter},
	}
}

// validateSequence checks that every slot is wired to a step producing the
// slot's field and that no step reads a field produced after it.
func validateSequence(slots []pipelineSlot) error {
	available := map[domain.Field]bool{
		domain.FieldVideoURL:   true,
		domain.FieldDomainURL:  true,
		domain.FieldRawBlog:    true,
		domain.FieldVideoID:    true,
		domain.FieldTranscript: true,
	}
	for _, slot := range slots {
		if slot.assemble == nil {
			if slot.step == nil {
				return fmt.Errorf("pipeline slot %s has no step", slot.name)
			}
			if slot.step.Produces() != slot.produces {
				return fmt.Errorf("pipeline slot %s expects %s but step %s produces %s",
					slot.name, slot.produces, slot.step.Name(), slot.step.Produces())
			}
			for _, field := range slot.step.Requires() {
				if !available[field] {
					return fmt.Errorf("step %s requires %s before it is produced", slot.step.Name(), field)
				}
			}
		}
		available[slot.produces] = true
	}
	return nil
}

type blogPipeline struct {
	logger            outbound.LoggerPort
	transcriptFetcher outbound.TranscriptFetcherPort
	slots             []pipelineSlot
}

func NewBlogPipeline(logger outbound.LoggerPort, transcriptFetcher outbound.TranscriptFetcherPort,
	steps BlogSteps) (inbound.BlogPipelinePort, error) {
	if transcriptFetcher == nil {
		return nil, errors.New("transcript fetcher is required")
	}
	slots := steps.sequence()
	if err := validateSequence(slots); err != nil {
		return nil, err
	}
	return &blogPipeline{
		logger:            logger,
		transcriptFetcher: transcriptFetcher,
		slots:             slots,
	}, nil
}

func (p *blogPipeline) Run(ctx context.Context, params inbound.RunPipelineParams) (*domain.PipelineResult, error) {
	runID := params.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	logger := p.logger.With(map[string]interface{}{
		"run_id":    runID,
		"video_url": params.Request.VideoURL,
	})
	notify := func(blog domain.BlogContext, step string) {
		if params.OnStage != nil {
			params.OnStage(domain.StageEvent{RunID: runID, Stage: blog.Stage, Step: step, Version: blog.Version})
		}
	}

	blog := domain.NewBlogContext(runID, params.Request)
	logger.Info("Starting blog pipeline")

	videoID, err := ExtractVideoID(params.Request.VideoURL)
	if err != nil {
		logger.Error(err, "Failed to extract video id")
		return nil, err
	}
	blog = blog.WithVideoID(videoID)
	notify(blog, "extract_video_id")

	transcript, err := p.transcriptFetcher.Fetch(ctx, videoID)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		logger.ErrorWithFields(err, "Transcript fetch failed", map[string]interface{}{"video_id": videoID})
		transcript = ""
	}
	if transcriptUnavailable(transcript) {
		blog = blog.Failed()
		notify(blog, "fetch_transcript")
		logger.WarnWithFields("Transcript not available, stopping pipeline", map[string]interface{}{
			"video_id": videoID,
		})
		return domain.TranscriptUnavailableResult(runID, params.Request.VideoURL), nil
	}
	blog = blog.WithTranscript(transcript)
	notify(blog, "fetch_transcript")

	for _, slot := range p.slots {
		if slot.assemble != nil {
			blog = slot.assemble(blog)
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		next, err := slot.step.Run(ctx, blog)
		if err != nil {
			err = withStepStack(slot.step.Name(), err)
			logger.ErrorWithFields(err, "Generation step failed", map[string]interface{}{
				"step":  slot.step.Name(),
				"stack": stepStack(err),
			})
			return nil, err
		}
		if !next.Has(slot.produces) {
			err := withStepStack(slot.step.Name(), domain.NewStepContractError(slot.step.Name(), slot.produces))
			logger.ErrorWithFields(err, "Generation step returned an incomplete context", map[string]interface{}{
				"step":  slot.step.Name(),
				"stack": stepStack(err),
			})
			return nil, err
		}
		blog = next
		logger.DebugWithFields("Generation step complete", map[string]interface{}{
			"step":        slot.step.Name(),
			"stage":       blog.Stage,
			"version":     blog.Version,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		notify(blog, slot.step.Name())
	}

	blog = blog.Done()
	notify(blog, "")
	logger.InfoWithFields("Blog pipeline complete", map[string]interface{}{
		"version": blog.Version,
	})

	return domain.SuccessResult(runID, blog.FinalBlog.PolishedBlog), nil
}

// transcriptUnavailable treats only the empty string as missing. A
// whitespace-only transcript still runs the transcript steps.
func transcriptUnavailable(transcript string) bool {
	return transcript == "" || strings.Contains(transcript, domain.TranscriptFailureSentinel)
}

// withStepStack tags err with the failing step and records the stack of the
// goroutine running the pipeline. An existing StepError keeps its step name.
func withStepStack(step string, err error) error {
	var stepErr *domain.StepError
	if !errors.As(err, &stepErr) {
		stepErr = &domain.StepError{Step: step, Err: err}
		err = stepErr
	}
	if stepErr.Stack == nil {
		stepErr.Stack = debug.Stack()
	}
	return err
}

func stepStack(err error) string {
	var stepErr *domain.StepError
	if errors.As(err, &stepErr) {
		return string(stepErr.Stack)
	}
	return ""
}
