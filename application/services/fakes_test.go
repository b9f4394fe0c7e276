package services

import (
	"context"
	"io"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/domain"
	"seo-blog-generator/infrastructure/adapters"
	"sync"
)

func newTestLogger() outbound.LoggerPort {
	return adapters.NewZerologWrapperWithOptions(io.Discard, "debug", false)
}

type fakeFetcher struct {
	transcript string
	err        error
	calls      int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.transcript, f.err
}

// fakeStep records its name in calls and applies a fixed update.
type fakeStep struct {
	name     string
	requires []domain.Field
	produces domain.Field
	apply    func(blog domain.BlogContext) domain.BlogContext
	err      error

	mu    *sync.Mutex
	calls *[]string
	seen  *[]domain.BlogContext
}

func (f *fakeStep) Name() string { return f.name }
func (f *fakeStep) Requires() []domain.Field { return f.requires }
func (f *fakeStep) Produces() domain.Field { return f.produces }

func (f *fakeStep) Run(_ context.Context, blog domain.BlogContext) (domain.BlogContext, error) {
	f.mu.Lock()
	*f.calls = append(*f.calls, f.name)
	*f.seen = append(*f.seen, blog)
	f.mu.Unlock()
	if f.err != nil {
		return blog, f.err
	}
	return f.apply(blog), nil
}

type stepRecorder struct {
	mu    sync.Mutex
	calls []string
	seen  []domain.BlogContext
}

func (r *stepRecorder) step(name string, requires []domain.Field, produces domain.Field,
	apply func(blog domain.BlogContext) domain.BlogContext) *fakeStep {
	return &fakeStep{
		name:     name,
		requires: requires,
		produces: produces,
		apply:    apply,
		mu:       &r.mu,
		calls:    &r.calls,
		seen:     &r.seen,
	}
}

func section(name string) domain.Section {
	return domain.Section{Heading: name, Content: name + " content"}
}

func (r *stepRecorder) blogSteps() BlogSteps {
	kd := []domain.Field{domain.FieldKeywordDetails}
	return BlogSteps{
		SpecificDetails: r.step("specific_details", []domain.Field{domain.FieldTranscript}, domain.FieldExtractedSection,
			func(b domain.BlogContext) domain.BlogContext {
				return b.WithSpecificDetails(domain.SpecificDetails{Subject: "subject"})
			}),
		TopicKeyword: r.step("topic_keyword", []domain.Field{domain.FieldTranscript}, domain.FieldExtractedKeywords,
			func(b domain.BlogContext) domain.BlogContext {
				return b.WithTopicKeywords(domain.TopicKeywords{Topic: "topic"})
			}),
		Intro: r.step("intro", kd, domain.FieldIntroduction,
			func(b domain.BlogContext) domain.BlogContext { return b.WithIntroduction(section("intro")) }),
		IntroRefiner: r.step("refine_intro", []domain.Field{domain.FieldIntroduction}, domain.FieldRefinedIntro,
			func(b domain.BlogContext) domain.BlogContext { return b.WithRefinedIntro(section("refined")) }),
		Guide: r.step("guide", kd, domain.FieldGuide,
			func(b domain.BlogContext) domain.BlogContext { return b.WithGuide(section("guide")) }),
		IssueTroubleshoot: r.step("issue_troubleshoot", kd, domain.FieldIssueTroubleshoot,
			func(b domain.BlogContext) domain.BlogContext { return b.WithIssueTroubleshoot(section("troubleshoot")) }),
		Conclusion: r.step("conclusion", []domain.Field{domain.FieldRefinedIntro, domain.FieldGuide}, domain.FieldConclusion,
			func(b domain.BlogContext) domain.BlogContext { return b.WithConclusion(section("conclusion")) }),
		CTA: r.step("cta", []domain.Field{domain.FieldConclusion}, domain.FieldCTA,
			func(b domain.BlogContext) domain.BlogContext { return b.WithCTA(section("cta")) }),
		CustomizationTips: r.step("customization_tips", kd, domain.FieldCustomizationTips,
			func(b domain.BlogContext) domain.BlogContext { return b.WithCustomizationTips(section("tips")) }),
		DomainAligner: r.step("domain_aligned", []domain.Field{domain.FieldCombinedData}, domain.FieldDomainAlignedCTA,
			func(b domain.BlogContext) domain.BlogContext { return b.WithDomainAlignedCTA(section("aligned")) }),
		Rewriter: r.step("rewrite_blog", []domain.Field{domain.FieldCombinedData, domain.FieldDomainAlignedCTA}, domain.FieldFinalBlog,
			func(b domain.BlogContext) domain.BlogContext {
				return b.WithFinalBlog(domain.FinalBlog{Title: "Title", PolishedBlog: "# Final blog"})
			}),
	}
}

// fakeCompleter answers by task and records every request.
type fakeCompleter struct {
	mu       sync.Mutex
	answers  map[string]string
	err      error
	requests []outbound.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req outbound.CompletionRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.answers[req.Task], nil
}

type fakeProfiles struct {
	profile *domain.DomainProfile
	err     error
	calls   int
}

func (f *fakeProfiles) Fetch(_ context.Context, _ string) (*domain.DomainProfile, error) {
	f.calls++
	return f.profile, f.err
}
