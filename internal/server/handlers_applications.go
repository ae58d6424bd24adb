package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jordan/autoapply/internal/server/middleware"
	"github.com/jordan/autoapply/internal/types"
)

// handleListApplications returns the user's applications, newest first.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	applications, err := s.stores.Applications.ListApplications(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"applications": applications})
}

// handleUpdateApplicationStatus moves an application through the status state
// machine. Terminal statuses cannot be left.
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	applicationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req types.UpdateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	status, err := types.ParseStatus(req.Status)
	if err != nil {
		unknown := &ErrUnknownStatus{Status: req.Status}
		s.errorResponse(w, HTTPStatus(unknown), unknown.Error())
		return
	}

	application, err := s.stores.Applications.GetApplication(r.Context(), applicationID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load application")
		return
	}
	if application == nil {
		notFound := &ErrApplicationNotFound{ApplicationID: applicationID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	if !types.CanTransition(application.Status, status) {
		invalid := &ErrInvalidTransition{From: application.Status, To: status}
		s.errorResponse(w, HTTPStatus(invalid), invalid.Error())
		return
	}

	updated, err := s.stores.Applications.UpdateApplicationStatus(r.Context(), applicationID, userID, status)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update application")
		return
	}
	if !updated {
		notFound := &ErrApplicationNotFound{ApplicationID: applicationID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":     applicationID,
		"status": string(status),
	})
}
