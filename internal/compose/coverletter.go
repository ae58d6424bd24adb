package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/jordan/autoapply/internal/llm"
	"github.com/jordan/autoapply/internal/prompts"
	"github.com/jordan/autoapply/internal/types"
)

// CoverLetterComposer generates a short cover letter for one application.
// The letter is not persisted standalone; it lives on the Application record.
type CoverLetterComposer struct {
	llm llm.Client
}

// NewCoverLetterComposer creates a CoverLetterComposer using the given client.
func NewCoverLetterComposer(client llm.Client) *CoverLetterComposer {
	return &CoverLetterComposer{llm: client}
}

// Generate asks the generation service for a 3-4 paragraph letter embedding
// the job and the candidate's name and skills. Single call, no retry.
func (c *CoverLetterComposer) Generate(ctx context.Context, profile *types.Profile, job *types.Job) (string, error) {
	prompt := prompts.Format(prompts.MustGet("cover_letter"), map[string]string{
		"JobTitle":        job.Title,
		"Company":         job.Company,
		"JobDescription":  job.Description,
		"CandidateName":   profile.Name,
		"CandidateSkills": strings.Join(profile.Skills, ", "),
	})

	letter, err := c.llm.Generate(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("cover letter generation: %w", err)
	}
	return letter, nil
}
