package domain

type PipelineRequest struct {
	VideoURL  string
	DomainURL string
	RawBlog   string
}

func NewPipelineRequest(videoURL string, domainURL string, rawBlog string) PipelineRequest {
	return PipelineRequest{
		VideoURL:  videoURL,
		DomainURL: domainURL,
		RawBlog:   rawBlog,
	}
}

type Outcome string

const (
	OutcomeSuccess               Outcome = "success"
	OutcomeTranscriptUnavailable Outcome = "transcript_unavailable"
)

// PipelineResult is either a finished article or a transcript-unavailable
// notice. Every other failure is returned as an error instead.
type PipelineResult struct {
	RunID     string
	Outcome   Outcome
	FinalBlog string
	Reason    string
}

func SuccessResult(runID string, finalBlog string) *PipelineResult {
	return &PipelineResult{
		RunID:     runID,
		Outcome:   OutcomeSuccess,
		FinalBlog: finalBlog,
	}
}

func TranscriptUnavailableResult(runID string, videoURL string) *PipelineResult {
	return &PipelineResult{
		RunID:   runID,
		Outcome: OutcomeTranscriptUnavailable,
		Reason:  "Transcript not available for: " + videoURL,
	}
}

func (r PipelineResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

type SpecificDetails struct {
	Subject    string   `json:"subject" jsonschema_description:"The product, tool or subject the video is about"`
	KeyDetails []string `json:"key_details" jsonschema_description:"Concrete facts from the transcript: versions, settings, numbers, names"`
	Steps      []string `json:"steps" jsonschema_description:"Ordered actions demonstrated in the video, if any"`
}

type TopicKeywords struct {
	Topic             string   `json:"topic" jsonschema_description:"The article topic in a few words"`
	PrimaryKeyword    string   `json:"primary_keyword" jsonschema_description:"The main SEO keyword phrase"`
	SecondaryKeywords []string `json:"secondary_keywords" jsonschema_description:"Related keyword phrases, 3 to 8 entries"`
	SearchIntent      string   `json:"search_intent" jsonschema_description:"informational, navigational, commercial or transactional"`
}

// KeywordDetails is the combined_data_keyword_specific_details input.
type KeywordDetails struct {
	TopicKeyword    *TopicKeywords   `json:"topic_keyword"`
	SpecificDetails *SpecificDetails `json:"specific_details"`
}

type Section struct {
	Heading string `json:"heading" jsonschema_description:"Markdown-free section heading"`
	Content string `json:"content" jsonschema_description:"Section body in markdown"`
}

// CombinedSections is the combined_data input of the alignment and rewrite
// steps. It always serializes to exactly six keys.
type CombinedSections struct {
	Introduction      *Section `json:"introduction"`
	Guide             *Section `json:"guide"`
	IssueTroubleshoot *Section `json:"issue_troubleshoot"`
	Conclusion        *Section `json:"conclusion"`
	CTA               *Section `json:"cta"`
	CustomizationTips *Section `json:"customization_tips"`
}

type FinalBlog struct {
	Title        string `json:"Title" jsonschema_description:"SEO title of the article"`
	PolishedBlog string `json:"Polished_Blog" jsonschema_description:"The complete polished article in markdown"`
}

type DomainProfile struct {
	URL         string
	Title       string
	Description string
	Headings    []string
}

type StageEvent struct {
	RunID   string `json:"run_id"`
	Stage   Stage  `json:"stage"`
	Step    string `json:"step,omitempty"`
	Version int    `json:"version"`
}
