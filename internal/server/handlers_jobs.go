package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jordan/autoapply/internal/catalog"
	"github.com/jordan/autoapply/internal/db"
	"github.com/jordan/autoapply/internal/server/middleware"
	"github.com/jordan/autoapply/internal/types"
)

// handleSearchJobs returns the job catalog scored against the user's skills,
// sorted by compatibility. An optional platform query parameter filters the
// results after scoring.
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var skills []string
	profile, err := s.stores.Profiles.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	if profile != nil {
		skills = profile.Skills
	}

	jobs := catalog.Jobs(time.Now())
	s.scorer.Rank(jobs, skills)

	if platform := r.URL.Query().Get("platform"); platform != "" {
		filtered := jobs[:0]
		for _, job := range jobs {
			if strings.EqualFold(job.Platform, platform) {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// handleApplyToJob runs the full application workflow: resolve the job,
// reject duplicates, generate a tailored resume and cover letter, and record
// the application. A resume persisted before a later step fails is kept.
func (s *Server) handleApplyToJob(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	job := catalog.FindByID(catalog.Jobs(time.Now()), req.JobID)
	if job == nil {
		notFound := &ErrJobNotFound{JobID: req.JobID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	exists, err := s.stores.Applications.HasApplication(r.Context(), userID, job.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to check applications")
		return
	}
	if exists {
		dup := &ErrAlreadyApplied{JobID: job.ID}
		s.errorResponse(w, HTTPStatus(dup), dup.Error())
		return
	}

	profile, err := s.stores.Profiles.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	if profile == nil {
		notFound := &ErrProfileNotFound{}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	job.CompatibilityScore = s.scorer.Score(profile.Skills, job.Requirements)

	output, err := s.resumes.Generate(r.Context(), profile, job.Title, job.Description)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resume, err := s.stores.Resumes.CreateResume(r.Context(), userID, job.Title, job.Description, output.Content, output.Keywords)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume")
		return
	}

	coverLetter, err := s.coverLetter.Generate(r.Context(), profile, job)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	application, err := s.stores.Applications.CreateApplication(r.Context(), userID, *job, resume.ID, coverLetter)
	if err != nil {
		// A concurrent apply that passed the pre-check loses to the
		// unique index here.
		if db.IsUniqueViolation(err) {
			dup := &ErrAlreadyApplied{JobID: job.ID}
			s.errorResponse(w, HTTPStatus(dup), dup.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save application")
		return
	}

	s.jsonResponse(w, http.StatusCreated, application)
}
