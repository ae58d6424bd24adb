package compose

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/autoapply/internal/llm"
	"github.com/jordan/autoapply/internal/types"
)

// stubClient scripts responses per call and records every prompt it receives.
type stubClient struct {
	responses []string
	errs      []error
	prompts   []string
	tiers     []llm.ModelTier
}

func (s *stubClient) Generate(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	call := len(s.prompts)
	s.prompts = append(s.prompts, prompt)
	s.tiers = append(s.tiers, tier)
	if call < len(s.errs) && s.errs[call] != nil {
		return "", s.errs[call]
	}
	if call < len(s.responses) {
		return s.responses[call], nil
	}
	return "", errors.New("unexpected call")
}

func (s *stubClient) Close() error { return nil }

func testProfile() *types.Profile {
	return &types.Profile{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Skills: []string{"Python", "FastAPI", "PostgreSQL"},
		Education: []types.EducationEntry{
			{Degree: "BSc", Field: "Computer Science", Institution: "State University", Year: "2019"},
		},
		Experience: []types.ExperienceEntry{
			{Title: "Backend Engineer", Company: "Acme", Duration: "2019-2023", Description: "Built APIs"},
		},
		Projects: []types.ProjectEntry{
			{Name: "side-project", Description: "A CLI tool"},
		},
	}
}

func TestRenderProfileSummary(t *testing.T) {
	summary := RenderProfileSummary(testProfile())

	assert.Contains(t, summary, "Name: Jane Doe")
	assert.Contains(t, summary, "Skills: Python, FastAPI, PostgreSQL")
	assert.Contains(t, summary, "- BSc in Computer Science from State University (2019)")
	assert.Contains(t, summary, "- Backend Engineer at Acme (2019-2023): Built APIs")
	assert.Contains(t, summary, "- side-project: A CLI tool")

	t.Run("optional fields become placeholders", func(t *testing.T) {
		assert.Contains(t, summary, "Phone: N/A")
		assert.Contains(t, summary, "Location: N/A")
		assert.Contains(t, summary, "Summary: N/A")
	})
}

func TestResumeComposerGenerate(t *testing.T) {
	stub := &stubClient{responses: []string{
		"SUMMARY\nExperienced backend engineer.",
		"Python, FastAPI , PostgreSQL,REST APIs, Microservices",
	}}
	composer := NewResumeComposer(stub)

	out, err := composer.Generate(context.Background(), testProfile(), "Backend Developer", "Build scalable APIs with FastAPI.")
	require.NoError(t, err)

	assert.Equal(t, "SUMMARY\nExperienced backend engineer.", out.Content)
	assert.Equal(t, []string{"Python", "FastAPI", "PostgreSQL", "REST APIs", "Microservices"}, out.Keywords)

	require.Len(t, stub.prompts, 2)
	assert.Contains(t, stub.prompts[0], "Backend Developer")
	assert.Contains(t, stub.prompts[0], "Jane Doe")
	assert.Contains(t, stub.prompts[0], "ATS")
	assert.Contains(t, stub.prompts[1], "Build scalable APIs with FastAPI.")
	assert.Equal(t, llm.TierStandard, stub.tiers[0])
	assert.Equal(t, llm.TierLite, stub.tiers[1])
}

func TestResumeComposerStopsAfterFirstFailure(t *testing.T) {
	upstream := &llm.UpstreamError{Op: "generate", Cause: errors.New("quota")}
	stub := &stubClient{errs: []error{upstream}}
	composer := NewResumeComposer(stub)

	_, err := composer.Generate(context.Background(), testProfile(), "Backend Developer", "desc")
	require.Error(t, err)

	var ue *llm.UpstreamError
	assert.True(t, errors.As(err, &ue))
	assert.Len(t, stub.prompts, 1, "keyword call must not happen after resume failure")
}

func TestResumeComposerKeywordFailurePropagates(t *testing.T) {
	stub := &stubClient{
		responses: []string{"resume body", ""},
		errs:      []error{nil, &llm.UpstreamError{Op: "generate"}},
	}
	composer := NewResumeComposer(stub)

	_, err := composer.Generate(context.Background(), testProfile(), "Backend Developer", "desc")
	assert.Error(t, err)
}

func TestSplitKeywordsCapsAtTen(t *testing.T) {
	stub := &stubClient{responses: []string{
		"body",
		"a, b, c, d, e, f, g, h, i, j, k, l",
	}}
	composer := NewResumeComposer(stub)

	out, err := composer.Generate(context.Background(), testProfile(), "t", "d")
	require.NoError(t, err)
	assert.Len(t, out.Keywords, 10)
}

func TestCoverLetterComposerGenerate(t *testing.T) {
	stub := &stubClient{responses: []string{"Dear hiring team, ..."}}
	composer := NewCoverLetterComposer(stub)

	job := &types.Job{Title: "Backend Developer", Company: "ServerTech", Description: "APIs"}
	letter, err := composer.Generate(context.Background(), testProfile(), job)
	require.NoError(t, err)
	assert.Equal(t, "Dear hiring team, ...", letter)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "ServerTech")
	assert.Contains(t, stub.prompts[0], "Jane Doe")
	assert.Contains(t, stub.prompts[0], "Python, FastAPI, PostgreSQL")
	assert.Contains(t, stub.prompts[0], "3-4 paragraphs")
	assert.Equal(t, llm.TierStandard, stub.tiers[0])
}

func TestCoverLetterComposerUpstreamFailure(t *testing.T) {
	stub := &stubClient{errs: []error{&llm.UpstreamError{Op: "generate"}}}
	composer := NewCoverLetterComposer(stub)

	_, err := composer.Generate(context.Background(), testProfile(), &types.Job{})
	var ue *llm.UpstreamError
	assert.True(t, errors.As(err, &ue))
}
