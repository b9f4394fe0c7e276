package dto

import "seo-blog-generator/domain"

// RunPipelineRequest uses pointers so that "required" rejects missing
// fields but still accepts empty strings.
type RunPipelineRequest struct {
	VideoURL  *string `json:"video_url" binding:"required"`
	DomainURL *string `json:"domain_url" binding:"required"`
	RawBlog   *string `json:"raw_blog" binding:"required"`
}

func (r RunPipelineRequest) ToDomain() domain.PipelineRequest {
	return domain.NewPipelineRequest(deref(r.VideoURL), deref(r.DomainURL), deref(r.RawBlog))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
