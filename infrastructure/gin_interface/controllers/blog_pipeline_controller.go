package controllers

import (
	"errors"
	"net/http"
	"seo-blog-generator/application/ports/inbound"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/domain"
	"seo-blog-generator/infrastructure/gin_interface/dto"
	"seo-blog-generator/middleware"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RunIDHeader = "X-Run-ID"

var heartbeatInterval = 15 * time.Second

type BlogPipelineController interface {
	RunPipeline(c *gin.Context)
	StreamPipeline(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type blogPipelineController struct {
	logger   outbound.LoggerPort
	pipeline inbound.BlogPipelinePort
}

func NewBlogPipelineController(logger outbound.LoggerPort, pipeline inbound.BlogPipelinePort) BlogPipelineController {
	return &blogPipelineController{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (s *blogPipelineController) RunPipeline(c *gin.Context) {
	var runPipelineRequest dto.RunPipelineRequest
	if err := c.ShouldBindJSON(&runPipelineRequest); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.DetailResponse{Detail: err.Error()})
		return
	}

	runID := uuid.NewString()
	c.Header(RunIDHeader, runID)

	result, err := s.pipeline.Run(c.Request.Context(), inbound.RunPipelineParams{
		RunID:   runID,
		Request: runPipelineRequest.ToDomain(),
	})
	if err != nil {
		s.logFailure(runID, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.DetailResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewRunPipelineResponse(result))
}

type runOutcome struct {
	result *domain.PipelineResult
	err    error
}

// StreamPipeline runs the pipeline and reports every stage as a "stage"
// event, ending with one "result" or "error" event.
func (s *blogPipelineController) StreamPipeline(c *gin.Context) {
	var runPipelineRequest dto.RunPipelineRequest
	if err := c.ShouldBindJSON(&runPipelineRequest); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.DetailResponse{Detail: err.Error()})
		return
	}

	runID := uuid.NewString()
	c.Header(RunIDHeader, runID)
	ctx := c.Request.Context()

	events := make(chan domain.StageEvent, 32)
	done := make(chan runOutcome, 1)

	go func() {
		result, err := s.pipeline.Run(ctx, inbound.RunPipelineParams{
			RunID:   runID,
			Request: runPipelineRequest.ToDomain(),
			OnStage: func(event domain.StageEvent) {
				select {
				case events <- event:
				case <-ctx.Done():
				}
			},
		})
		done <- runOutcome{result: result, err: err}
	}()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Status(http.StatusOK)
	for {
		select {
		case event := <-events:
			c.SSEvent("stage", event)
			c.Writer.Flush()
		case <-heartbeat.C:
			if _, err := c.Writer.WriteString(": ping\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		case <-ctx.Done():
			s.logger.InfoWithFields("Stream client went away", map[string]interface{}{"run_id": runID})
			return
		case outcome := <-done:
			s.drainEvents(c, events)
			if outcome.err != nil {
				s.logFailure(runID, outcome.err)
				c.SSEvent("error", dto.DetailResponse{Detail: outcome.err.Error()})
			} else {
				c.SSEvent("result", dto.NewRunPipelineResponse(outcome.result))
			}
			c.Writer.Flush()
			return
		}
	}
}

func (s *blogPipelineController) drainEvents(c *gin.Context, events <-chan domain.StageEvent) {
	for {
		select {
		case event := <-events:
			c.SSEvent("stage", event)
		default:
			return
		}
	}
}

func (s *blogPipelineController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *blogPipelineController) logFailure(runID string, err error) {
	fields := map[string]interface{}{
		"run_id": runID,
	}
	var stepErr *domain.StepError
	if errors.As(err, &stepErr) {
		fields["step"] = stepErr.Step
		if len(stepErr.Stack) > 0 {
			fields["stack"] = string(stepErr.Stack)
		}
	}
	s.logger.ErrorWithFields(err, "Pipeline run failed", fields)
}

func (s *blogPipelineController) RegisterRoutes(g *gin.Engine) {
	g.GET("/health", s.Health)
	g.POST("/run-pipeline", s.RunPipeline)
	g.POST("/run-pipeline/stream", middleware.SSEMiddleware(), s.StreamPipeline)
}
