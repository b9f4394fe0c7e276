package domain

type Field string

const (
	FieldVideoURL          Field = "video_url"
	FieldDomainURL         Field = "domain_url"
	FieldRawBlog           Field = "raw_blog"
	FieldVideoID           Field = "video_id"
	FieldTranscript        Field = "transcript"
	FieldExtractedSection  Field = "extracted_section"
	FieldExtractedKeywords Field = "extracted_keywords"
	FieldKeywordDetails    Field = "combined_data_keyword_specific_details"
	FieldIntroduction      Field = "introduction"
	FieldRefinedIntro      Field = "refined_intro"
	FieldGuide             Field = "guide"
	FieldIssueTroubleshoot Field = "issue_troubleshoot"
	FieldConclusion        Field = "conclusion"
	FieldCTA               Field = "cta"
	FieldCustomizationTips Field = "customization_tips"
	FieldCombinedData      Field = "combined_data"
	FieldDomainAlignedCTA  Field = "domain_aligned_cta"
	FieldFinalBlog         Field = "final_blog"
)

type Stage string

const (
	StageStart                 Stage = "start"
	StageVideoIDExtracted      Stage = "video_id_extracted"
	StageTranscriptFetched     Stage = "transcript_fetched"
	StageFailed                Stage = "failed"
	StageDetailsExtracted      Stage = "details_extracted"
	StageKeywordExtracted      Stage = "keyword_extracted"
	StageIntroGenerated        Stage = "intro_generated"
	StageIntroRefined          Stage = "intro_refined"
	StageGuideGenerated        Stage = "guide_generated"
	StageTroubleshootGenerated Stage = "troubleshoot_generated"
	StageConclusionGenerated   Stage = "conclusion_generated"
	StageCtaGenerated          Stage = "cta_generated"
	StageTipsGenerated         Stage = "tips_generated"
	StageDomainAligned         Stage = "domain_aligned"
	StageRewritten             Stage = "rewritten"
	StageDone                  Stage = "done"
)

// BlogContext is the request-scoped record threaded through the pipeline.
// It is passed by value; every With method returns a copy with one more
// field set and Version incremented, so a step can never change the context
// its caller holds. Section pointers are shared between copies and must be
// treated as read-only.
type BlogContext struct {
	RunID   string
	Request PipelineRequest
	Version int
	Stage   Stage

	VideoID           string
	Transcript        string
	SpecificDetails   *SpecificDetails
	TopicKeywords     *TopicKeywords
	KeywordDetails    *KeywordDetails
	Introduction      *Section
	RefinedIntro      *Section
	Guide             *Section
	IssueTroubleshoot *Section
	Conclusion        *Section
	CTA               *Section
	CustomizationTips *Section
	CombinedSections  *CombinedSections
	DomainAlignedCTA  *Section
	FinalBlog         *FinalBlog
}

func NewBlogContext(runID string, request PipelineRequest) BlogContext {
	return BlogContext{
		RunID:   runID,
		Request: request,
		Stage:   StageStart,
	}
}

func (c BlogContext) Has(field Field) bool {
	switch field {
	case FieldVideoURL:
		return c.Request.VideoURL != ""
	case FieldDomainURL:
		return c.Request.DomainURL != ""
	case FieldRawBlog:
		return c.Request.RawBlog != ""
	case FieldVideoID:
		return c.VideoID != ""
	case FieldTranscript:
		return c.Transcript != ""
	case FieldExtractedSection:
		return c.SpecificDetails != nil
	case FieldExtractedKeywords:
		return c.TopicKeywords != nil
	case FieldKeywordDetails:
		return c.KeywordDetails != nil
	case FieldIntroduction:
		return c.Introduction != nil
	case FieldRefinedIntro:
		return c.RefinedIntro != nil
	case FieldGuide:
		return c.Guide != nil
	case FieldIssueTroubleshoot:
		return c.IssueTroubleshoot != nil
	case FieldConclusion:
		return c.Conclusion != nil
	case FieldCTA:
		return c.CTA != nil
	case FieldCustomizationTips:
		return c.CustomizationTips != nil
	case FieldCombinedData:
		return c.CombinedSections != nil
	case FieldDomainAlignedCTA:
		return c.DomainAlignedCTA != nil
	case FieldFinalBlog:
		return c.FinalBlog != nil
	}
	return false
}

func (c BlogContext) next(stage Stage) BlogContext {
	c.Version++
	if stage != "" {
		c.Stage = stage
	}
	return c
}

func (c BlogContext) WithVideoID(videoID string) BlogContext {
	c.VideoID = videoID
	return c.next(StageVideoIDExtracted)
}

func (c BlogContext) WithTranscript(transcript string) BlogContext {
	c.Transcript = transcript
	return c.next(StageTranscriptFetched)
}

func (c BlogContext) WithSpecificDetails(details SpecificDetails) BlogContext {
	c.SpecificDetails = &details
	return c.next(StageDetailsExtracted)
}

func (c BlogContext) WithTopicKeywords(keywords TopicKeywords) BlogContext {
	c.TopicKeywords = &keywords
	return c.next(StageKeywordExtracted)
}

// WithKeywordDetails snapshots the latest keywords and details. It does not
// advance the stage.
func (c BlogContext) WithKeywordDetails() BlogContext {
	c.KeywordDetails = &KeywordDetails{
		TopicKeyword:    c.TopicKeywords,
		SpecificDetails: c.SpecificDetails,
	}
	return c.next("")
}

func (c BlogContext) WithIntroduction(section Section) BlogContext {
	c.Introduction = &section
	return c.next(StageIntroGenerated)
}

func (c BlogContext) WithRefinedIntro(section Section) BlogContext {
	c.RefinedIntro = &section
	return c.next(StageIntroRefined)
}

func (c BlogContext) WithGuide(section Section) BlogContext {
	c.Guide = &section
	return c.next(StageGuideGenerated)
}

func (c BlogContext) WithIssueTroubleshoot(section Section) BlogContext {
	c.IssueTroubleshoot = &section
	return c.next(StageTroubleshootGenerated)
}

func (c BlogContext) WithConclusion(section Section) BlogContext {
	c.Conclusion = &section
	return c.next(StageConclusionGenerated)
}

func (c BlogContext) WithCTA(section Section) BlogContext {
	c.CTA = &section
	return c.next(StageCtaGenerated)
}

func (c BlogContext) WithCustomizationTips(section Section) BlogContext {
	c.CustomizationTips = &section
	return c.next(StageTipsGenerated)
}

// WithCombinedSections snapshots the six generated sections. It does not
// advance the stage.
func (c BlogContext) WithCombinedSections() BlogContext {
	c.CombinedSections = &CombinedSections{
		Introduction:      c.RefinedIntro,
		Guide:             c.Guide,
		IssueTroubleshoot: c.IssueTroubleshoot,
		Conclusion:        c.Conclusion,
		CTA:               c.CTA,
		CustomizationTips: c.CustomizationTips,
	}
	return c.next("")
}

func (c BlogContext) WithDomainAlignedCTA(section Section) BlogContext {
	c.DomainAlignedCTA = &section
	return c.next(StageDomainAligned)
}

func (c BlogContext) WithFinalBlog(blog FinalBlog) BlogContext {
	c.FinalBlog = &blog
	return c.next(StageRewritten)
}

func (c BlogContext) Done() BlogContext {
	return c.next(StageDone)
}

func (c BlogContext) Failed() BlogContext {
	return c.next(StageFailed)
}
