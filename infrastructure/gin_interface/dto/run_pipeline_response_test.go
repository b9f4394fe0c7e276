package dto

import (
	"encoding/json"
	"seo-blog-generator/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunPipelineResponse(t *testing.T) {
	raw, err := json.Marshal(NewRunPipelineResponse(domain.SuccessResult("run-1", "# Blog")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Final_Blog":"# Blog"}`, string(raw))

	raw, err = json.Marshal(NewRunPipelineResponse(domain.TranscriptUnavailableResult("run-1", "https://youtu.be/x")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Transcript not available for: https://youtu.be/x"}`, string(raw))
}

func TestRunPipelineRequest_ToDomain(t *testing.T) {
	var req RunPipelineRequest
	require.NoError(t, json.Unmarshal([]byte(`{"video_url":"v","domain_url":"d","raw_blog":"r"}`), &req))

	assert.Equal(t, domain.NewPipelineRequest("v", "d", "r"), req.ToDomain())
	assert.Equal(t, domain.PipelineRequest{}, RunPipelineRequest{}.ToDomain())
}
