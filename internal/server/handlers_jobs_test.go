package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/autoapply/internal/catalog"
	"github.com/jordan/autoapply/internal/llm"
	"github.com/jordan/autoapply/internal/types"
)

func firstCatalogJob() types.Job {
	return catalog.Jobs(time.Now())[0]
}

func TestSearchJobs(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.newAuthedUser(t, "Python", "React")

	rec := ts.do(authedRequest(http.MethodGet, "/api/jobs/search", "", token))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Jobs []types.Job `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 6)

	// Scored and sorted by compatibility, best first
	for i, job := range resp.Jobs {
		assert.NotEmpty(t, job.ID)
		assert.GreaterOrEqual(t, job.CompatibilityScore, 0)
		assert.LessOrEqual(t, job.CompatibilityScore, 95)
		if i > 0 {
			assert.GreaterOrEqual(t, resp.Jobs[i-1].CompatibilityScore, job.CompatibilityScore)
		}
	}
}

func TestSearchJobs_PlatformFilter(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.newAuthedUser(t, "Go")

	platform := firstCatalogJob().Platform
	rec := ts.do(authedRequest(http.MethodGet, "/api/jobs/search?platform="+platform, "", token))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Jobs []types.Job `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Jobs)
	for _, job := range resp.Jobs {
		assert.Equal(t, platform, job.Platform)
	}
}

func TestSearchJobs_NoProfileStillScores(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.newAuthedUser(t)

	ts.store.mu.Lock()
	delete(ts.store.profiles, userID)
	ts.store.mu.Unlock()

	rec := ts.do(authedRequest(http.MethodGet, "/api/jobs/search", "", token))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Jobs []types.Job `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 6)
	// Without skills the fallback band applies
	for _, job := range resp.Jobs {
		assert.GreaterOrEqual(t, job.CompatibilityScore, 60)
		assert.LessOrEqual(t, job.CompatibilityScore, 85)
	}
}

func applyBody(jobID string) string {
	body, _ := json.Marshal(map[string]string{"job_id": jobID})
	return string(body)
}

func TestApplyToJob(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.newAuthedUser(t, "Python")

	job := firstCatalogJob()
	rec := ts.do(authedRequest(http.MethodPost, "/api/jobs/apply", applyBody(job.ID), token))
	require.Equal(t, http.StatusCreated, rec.Code)

	var app types.Application
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &app))
	assert.Equal(t, userID, app.UserID)
	assert.Equal(t, job.ID, app.JobID)
	assert.Equal(t, job.Title, app.JobTitle)
	assert.Equal(t, job.Company, app.Company)
	assert.Equal(t, types.StatusApplied, app.Status)
	assert.Equal(t, "Dear Hiring Manager,", app.CoverLetter)

	// A resume was generated and persisted for the application
	resume, err := ts.store.GetResume(context.Background(), app.ResumeID, userID)
	require.NoError(t, err)
	require.NotNil(t, resume)
	assert.Equal(t, job.Title, resume.JobTitle)

	assert.Equal(t, 1, ts.resumes.calls)
	assert.Equal(t, 1, ts.cover.calls)
}

func TestApplyToJob_UnknownJob(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.newAuthedUser(t, "Python")

	rec := ts.do(authedRequest(http.MethodPost, "/api/jobs/apply", applyBody("no-such-job"), token))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, ts.resumes.calls)
}

func TestApplyToJob_Duplicate(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.newAuthedUser(t, "Python")

	job := firstCatalogJob()
	rec := ts.do(authedRequest(http.MethodPost, "/api/jobs/apply", applyBody(job.ID), token))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(authedRequest(http.MethodPost, "/api/jobs/apply", applyBody(job.ID), token))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The duplicate is rejected before any new generation
	assert.Equal(t, 1, ts.resumes.calls)
	assert.Equal(t, 1, ts.cover.calls)
}

func TestApplyToJob_UniqueViolationMapsToConflict(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.newAuthedUser(t, "Python")

	// A concurrent apply can pass the pre-check and lose on insert
	ts.store.createApplicationErr = &pgconn.PgError{Code: "23505", ConstraintName: "applications_user_id_job_id_key"}

	job := firstCatalogJob()
	rec := ts.do(authedRequest(http.MethodPost, "/api/jobs/apply", applyBody(job.ID), token))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestApplyToJob_NoProfile(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.newAuthedUser(t)

	ts.store.mu.Lock()
	delete(ts.store.profiles, userID)
	ts.store.mu.Unlock()

	job := firstCatalogJob()
	rec := ts.do(authedRequest(http.MethodPost, "/api/jobs/apply", applyBody(job.ID), token))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, ts.resumes.calls)
}

func TestApplyToJob_ResumeFailureKeepsNothing(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.newAuthedUser(t, "Python")

	ts.resumes.err = &llm.UpstreamError{Op: "generate resume", Cause: errBoom}

	job := firstCatalogJob()
	rec := ts.do(authedRequest(http.MethodPost, "/api/jobs/apply", applyBody(job.ID), token))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	ts.store.mu.Lock()
	assert.Empty(t, ts.store.resumes)
	assert.Empty(t, ts.store.applications)
	ts.store.mu.Unlock()

	apps, err := ts.store.ListApplications(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestApplyToJob_CoverLetterFailureKeepsResume(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.newAuthedUser(t, "Python")

	ts.cover.err = &llm.UpstreamError{Op: "generate cover letter", Cause: errBoom}

	job := firstCatalogJob()
	rec := ts.do(authedRequest(http.MethodPost, "/api/jobs/apply", applyBody(job.ID), token))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	// The resume generated before the failure stays; no application is recorded
	resumes, err := ts.store.ListResumes(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, resumes, 1)

	apps, err := ts.store.ListApplications(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, apps)

	// The job remains appliable after the failed attempt
	ts.cover.err = nil
	rec = ts.do(authedRequest(http.MethodPost, "/api/jobs/apply", applyBody(job.ID), token))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestApplyToJob_Validation(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.newAuthedUser(t, "Python")

	for _, body := range []string{`{}`, `{"job_id": ""}`, `not json`} {
		rec := ts.do(authedRequest(http.MethodPost, "/api/jobs/apply", body, token))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}
