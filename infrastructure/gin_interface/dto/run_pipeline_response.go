package dto

import "seo-blog-generator/domain"

type RunPipelineResponse struct {
	FinalBlog *string `json:"Final_Blog,omitempty"`
	Error     *string `json:"error,omitempty"`
}

// NewRunPipelineResponse renders a result as {"Final_Blog": ...} or, when
// the transcript was unavailable, {"error": ...}.
func NewRunPipelineResponse(result *domain.PipelineResult) RunPipelineResponse {
	if result.Succeeded() {
		blog := result.FinalBlog
		return RunPipelineResponse{FinalBlog: &blog}
	}
	reason := result.Reason
	return RunPipelineResponse{Error: &reason}
}

type DetailResponse struct {
	Detail string `json:"detail"`
}
