package services

const maxTranscriptChars = 48000

const seoWriterSystem = `You are a senior SEO content writer. You write clear, accurate, helpful articles ` +
	`based only on the material you are given. Always answer with a single JSON object and nothing else.`

const specificDetailsPrompt = `Read the following video transcript and extract the specific, concrete details it contains.
Focus on names of products and tools, versions, settings, numbers and the exact actions shown.
Do not invent anything that is not in the transcript.

Transcript:
%s`

const topicKeywordPrompt = `Read the following video transcript and decide what a blog article based on it should rank for.
Return the article topic, one primary keyword phrase, 3 to 8 secondary keyword phrases and the search intent.

Transcript:
%s`

const introPrompt = `Write the introduction of a blog article.
Use the primary keyword in the first two sentences and keep it under 150 words.
Hook the reader with the problem the article solves.

Topic, keywords and details:
%s`

const refineIntroPrompt = `Improve the following blog introduction.
Keep the primary keyword, tighten the wording, remove filler and make sure it flows into a step-by-step guide.

Introduction:
%s

Topic, keywords and details:
%s`

const guidePrompt = `Write the main step-by-step guide section of the blog article.
Use numbered steps, mention the exact settings and values from the details, and use secondary keywords naturally.

Topic, keywords and details:
%s

Transcript:
%s`

const issueTroubleshootPrompt = `Write a troubleshooting section for the blog article.
List the common problems a reader may hit while following the guide and how to fix each one.

Topic, keywords and details:
%s

Transcript:
%s`

const conclusionPrompt = `Write the conclusion of the blog article.
Summarise what the reader achieved, restate the primary keyword once and keep it under 120 words.

Topic, keywords and details:
%s

Introduction:
%s

Guide:
%s`

const ctaPrompt = `Write a short call-to-action section that follows the conclusion.
Invite the reader to take the next step related to the topic.

Topic, keywords and details:
%s

Conclusion:
%s`

const customizationTipsPrompt = `Write a customization tips section for the blog article.
Give practical ways to adapt the result of the guide to different needs or preferences.

Topic, keywords and details:
%s

Transcript:
%s`

const domainAlignedPrompt = `Rewrite the call-to-action of the article so it points readers to the website below.
Match the site's products and voice. Mention the site by name when it is known. Keep it short.

Website URL: %s
Website profile:
%s

Article sections:
%s`

const rewriteBlogPrompt = `Merge the generated sections and the domain-aligned call-to-action into the author's draft.
Keep the draft's voice and any facts it contains, fill its gaps with the generated sections,
use the generated call-to-action in place of any existing one and return the complete polished article in markdown
with a SEO title.

Author's draft:
%s

Generated sections:
%s

Domain-aligned call-to-action:
%s`
