package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/jordan/autoapply/internal/llm"
	"github.com/jordan/autoapply/internal/prompts"
	"github.com/jordan/autoapply/internal/types"
)

// maxKeywords bounds the keyword list extracted from a job description.
const maxKeywords = 10

// ResumeOutput is the result of one resume generation: the body text plus the
// keywords extracted from the job description.
type ResumeOutput struct {
	Content  string
	Keywords []string
}

// ResumeComposer generates ATS-friendly resume text for a profile/job pair.
// Callers must verify the profile exists before invoking Generate; the
// composer never calls the generation service on behalf of a missing profile.
type ResumeComposer struct {
	llm llm.Client
}

// NewResumeComposer creates a ResumeComposer using the given generation client.
func NewResumeComposer(client llm.Client) *ResumeComposer {
	return &ResumeComposer{llm: client}
}

// Generate renders the profile summary, asks the generation service for the
// resume body, then for the job description's top keywords. The two calls are
// sequential blocking round trips; either failure surfaces unretried.
func (c *ResumeComposer) Generate(ctx context.Context, profile *types.Profile, jobTitle, jobDescription string) (*ResumeOutput, error) {
	resumePrompt := prompts.Format(prompts.MustGet("resume"), map[string]string{
		"JobTitle":       jobTitle,
		"JobDescription": jobDescription,
		"ProfileSummary": RenderProfileSummary(profile),
	})

	content, err := c.llm.Generate(ctx, resumePrompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("resume generation: %w", err)
	}

	keywordsPrompt := prompts.Format(prompts.MustGet("keywords"), map[string]string{
		"JobDescription": jobDescription,
	})

	keywordsText, err := c.llm.Generate(ctx, keywordsPrompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction: %w", err)
	}

	return &ResumeOutput{
		Content:  content,
		Keywords: splitKeywords(keywordsText),
	}, nil
}

// splitKeywords splits a comma-separated model response into trimmed items,
// dropping empties and capping the list at maxKeywords.
func splitKeywords(s string) []string {
	keywords := make([]string, 0, maxKeywords)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		keywords = append(keywords, item)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
