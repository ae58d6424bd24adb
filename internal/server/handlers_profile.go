package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/jordan/autoapply/internal/schemas"
	"github.com/jordan/autoapply/internal/server/middleware"
	"github.com/jordan/autoapply/internal/types"
)

// handleGetProfile returns the authenticated user's profile document.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.stores.Profiles.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	if profile == nil {
		err := &ErrProfileNotFound{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfile replaces the user's profile document wholesale. The raw
// body is schema-validated before decoding so malformed list entries are
// rejected with a field-level message.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !json.Valid(body) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := schemas.ValidateProfile(body); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var profile types.Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Identity fields are server-controlled
	profile.UserID = userID
	profile.UpdatedAt = time.Now().UTC()

	if err := s.stores.Profiles.UpsertProfile(r.Context(), &profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, &profile)
}
