package services

import (
	"context"
	"fmt"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/domain"
	"strings"
)

func NewSpecificDetailsStep(logger outbound.LoggerPort, completer outbound.CompletionPort) outbound.GenerationStep {
	return &promptStep[domain.SpecificDetails]{
		name:        "specific_details",
		requires:    []domain.Field{domain.FieldTranscript},
		produces:    domain.FieldExtractedSection,
		system:      seoWriterSystem,
		temperature: 0.2,
		logger:      logger,
		completer:   completer,
		buildPrompt: func(_ context.Context, blog domain.BlogContext) (string, error) {
			return fmt.Sprintf(specificDetailsPrompt, truncate(blog.Transcript, maxTranscriptChars)), nil
		},
		apply: domain.BlogContext.WithSpecificDetails,
	}
}

func NewTopicKeywordStep(logger outbound.LoggerPort, completer outbound.CompletionPort) outbound.GenerationStep {
	return &promptStep[domain.TopicKeywords]{
		name:        "topic_keyword",
		requires:    []domain.Field{domain.FieldTranscript},
		produces:    domain.FieldExtractedKeywords,
		system:      seoWriterSystem,
		temperature: 0.3,
		logger:      logger,
		completer:   completer,
		buildPrompt: func(_ context.Context, blog domain.BlogContext) (string, error) {
			return fmt.Sprintf(topicKeywordPrompt, truncate(blog.Transcript, maxTranscriptChars)), nil
		},
		apply: domain.BlogContext.WithTopicKeywords,
	}
}

func NewIntroStep(logger outbound.LoggerPort, completer outbound.CompletionPort) outbound.GenerationStep {
	return newSectionStep(logger, completer, "intro",
		[]domain.Field{domain.FieldKeywordDetails}, domain.FieldIntroduction,
		func(blog domain.BlogContext) string {
			return fmt.Sprintf(introPrompt, toJSON(blog.KeywordDetails))
		},
		domain.BlogContext.WithIntroduction)
}

func NewIntroRefinerStep(logger outbound.LoggerPort, completer outbound.CompletionPort) outbound.GenerationStep {
	return newSectionStep(logger, completer, "refine_intro",
		[]domain.Field{domain.FieldIntroduction, domain.FieldKeywordDetails}, domain.FieldRefinedIntro,
		func(blog domain.BlogContext) string {
			return fmt.Sprintf(refineIntroPrompt, toJSON(blog.Introduction), toJSON(blog.KeywordDetails))
		},
		domain.BlogContext.WithRefinedIntro)
}

func NewGuideStep(logger outbound.LoggerPort, completer outbound.CompletionPort) outbound.GenerationStep {
	return newSectionStep(logger, completer, "guide",
		[]domain.Field{domain.FieldKeywordDetails, domain.FieldTranscript}, domain.FieldGuide,
		func(blog domain.BlogContext) string {
			return fmt.Sprintf(guidePrompt, toJSON(blog.KeywordDetails), truncate(blog.Transcript, maxTranscriptChars))
		},
		domain.BlogContext.WithGuide)
}

func NewIssueTroubleshootStep(logger outbound.LoggerPort, completer outbound.CompletionPort) outbound.GenerationStep {
	return newSectionStep(logger, completer, "issue_troubleshoot",
		[]domain.Field{domain.FieldKeywordDetails, domain.FieldTranscript}, domain.FieldIssueTroubleshoot,
		func(blog domain.BlogContext) string {
			return fmt.Sprintf(issueTroubleshootPrompt, toJSON(blog.KeywordDetails), truncate(blog.Transcript, maxTranscriptChars))
		},
		domain.BlogContext.WithIssueTroubleshoot)
}

func NewConclusionStep(logger outbound.LoggerPort, completer outbound.CompletionPort) outbound.GenerationStep {
	return newSectionStep(logger, completer, "conclusion",
		[]domain.Field{domain.FieldKeywordDetails, domain.FieldRefinedIntro, domain.FieldGuide}, domain.FieldConclusion,
		func(blog domain.BlogContext) string {
			return fmt.Sprintf(conclusionPrompt, toJSON(blog.KeywordDetails), toJSON(blog.RefinedIntro), toJSON(blog.Guide))
		},
		domain.BlogContext.WithConclusion)
}

func NewCTAStep(logger outbound.LoggerPort, completer outbound.CompletionPort) outbound.GenerationStep {
	return newSectionStep(logger, completer, "cta",
		[]domain.Field{domain.FieldKeywordDetails, domain.FieldConclusion}, domain.FieldCTA,
		func(blog domain.BlogContext) string {
			return fmt.Sprintf(ctaPrompt, toJSON(blog.KeywordDetails), toJSON(blog.Conclusion))
		},
		domain.BlogContext.WithCTA)
}

func NewCustomizationTipsStep(logger outbound.LoggerPort, completer outbound.CompletionPort) outbound.GenerationStep {
	return newSectionStep(logger, completer, "customization_tips",
		[]domain.Field{domain.FieldKeywordDetails, domain.FieldTranscript}, domain.FieldCustomizationTips,
		func(blog domain.BlogContext) string {
			return fmt.Sprintf(customizationTipsPrompt, toJSON(blog.KeywordDetails), truncate(blog.Transcript, maxTranscriptChars))
		},
		domain.BlogContext.WithCustomizationTips)
}

// NewDomainAlignerStep aligns the CTA with the target site. profiles may be
// nil; a failed profile fetch only drops the site description from the prompt.
// An empty domain URL is passed through and no profile is fetched.
func NewDomainAlignerStep(logger outbound.LoggerPort, completer outbound.CompletionPort,
	profiles outbound.DomainProfilePort) outbound.GenerationStep {
	return &promptStep[domain.Section]{
		name:        "domain_aligned",
		requires:    []domain.Field{domain.FieldCombinedData},
		produces:    domain.FieldDomainAlignedCTA,
		system:      seoWriterSystem,
		temperature: defaultTemperature,
		logger:      logger,
		completer:   completer,
		buildPrompt: func(ctx context.Context, blog domain.BlogContext) (string, error) {
			profile := "unknown"
			if profiles != nil && blog.Request.DomainURL != "" {
				p, err := profiles.Fetch(ctx, blog.Request.DomainURL)
				if err != nil {
					logger.WarnWithFields("Domain profile unavailable, aligning on URL only", map[string]interface{}{
						"domain_url": blog.Request.DomainURL,
						"error":      err.Error(),
					})
				} else {
					profile = describeProfile(p)
				}
			}
			return fmt.Sprintf(domainAlignedPrompt, blog.Request.DomainURL, profile, toJSON(blog.CombinedSections)), nil
		},
		apply: domain.BlogContext.WithDomainAlignedCTA,
	}
}

func NewRewriterStep(logger outbound.LoggerPort, completer outbound.CompletionPort) outbound.GenerationStep {
	return &promptStep[domain.FinalBlog]{
		name:        "rewrite_blog",
		requires:    []domain.Field{domain.FieldCombinedData, domain.FieldDomainAlignedCTA},
		produces:    domain.FieldFinalBlog,
		system:      seoWriterSystem,
		temperature: 0.5,
		logger:      logger,
		completer:   completer,
		buildPrompt: func(_ context.Context, blog domain.BlogContext) (string, error) {
			return fmt.Sprintf(rewriteBlogPrompt, blog.Request.RawBlog,
				toJSON(blog.CombinedSections), toJSON(blog.DomainAlignedCTA)), nil
		},
		apply: domain.BlogContext.WithFinalBlog,
	}
}

// NewBlogSteps wires every section generator to the same completer.
func NewBlogSteps(logger outbound.LoggerPort, completer outbound.CompletionPort,
	profiles outbound.DomainProfilePort) BlogSteps {
	return BlogSteps{
		SpecificDetails:   NewSpecificDetailsStep(logger, completer),
		TopicKeyword:      NewTopicKeywordStep(logger, completer),
		Intro:             NewIntroStep(logger, completer),
		IntroRefiner:      NewIntroRefinerStep(logger, completer),
		Guide:             NewGuideStep(logger, completer),
		IssueTroubleshoot: NewIssueTroubleshootStep(logger, completer),
		Conclusion:        NewConclusionStep(logger, completer),
		CTA:               NewCTAStep(logger, completer),
		CustomizationTips: NewCustomizationTipsStep(logger, completer),
		DomainAligner:     NewDomainAlignerStep(logger, completer, profiles),
		Rewriter:          NewRewriterStep(logger, completer),
	}
}

func newSectionStep(logger outbound.LoggerPort, completer outbound.CompletionPort, name string,
	requires []domain.Field, produces domain.Field, prompt func(blog domain.BlogContext) string,
	apply func(blog domain.BlogContext, section domain.Section) domain.BlogContext) outbound.GenerationStep {
	return &promptStep[domain.Section]{
		name:        name,
		requires:    requires,
		produces:    produces,
		system:      seoWriterSystem,
		temperature: defaultTemperature,
		logger:      logger,
		completer:   completer,
		buildPrompt: func(_ context.Context, blog domain.BlogContext) (string, error) {
			return prompt(blog), nil
		},
		apply: apply,
	}
}

func describeProfile(p *domain.DomainProfile) string {
	var sb strings.Builder
	if p.Title != "" {
		fmt.Fprintf(&sb, "Title: %s\n", p.Title)
	}
	if p.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", p.Description)
	}
	if len(p.Headings) > 0 {
		fmt.Fprintf(&sb, "Headings: %s\n", strings.Join(p.Headings, "; "))
	}
	if sb.Len() == 0 {
		return "unknown"
	}
	return strings.TrimSpace(sb.String())
}
