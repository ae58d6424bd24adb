// Package server provides the HTTP REST API for the autoapply backend.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jordan/autoapply/internal/llm"
	"github.com/jordan/autoapply/internal/schemas"
	"github.com/jordan/autoapply/internal/types"
)

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates a failed login. The message is deliberately
// generic: it never reveals whether the email exists.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrProfileNotFound indicates the caller has no profile document yet.
type ErrProfileNotFound struct{}

func (e *ErrProfileNotFound) Error() string {
	return "profile not found, please complete your profile first"
}

// ErrJobNotFound indicates a job ID that matches no catalog posting.
type ErrJobNotFound struct {
	JobID string
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ErrResumeNotFound indicates a resume the caller does not own or that does
// not exist.
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// ErrApplicationNotFound indicates an application the caller does not own or
// that does not exist.
type ErrApplicationNotFound struct {
	ApplicationID uuid.UUID
}

func (e *ErrApplicationNotFound) Error() string {
	return fmt.Sprintf("application not found: %s", e.ApplicationID)
}

// ErrAlreadyApplied indicates a second application for the same job.
type ErrAlreadyApplied struct {
	JobID string
}

func (e *ErrAlreadyApplied) Error() string {
	return fmt.Sprintf("already applied to job: %s", e.JobID)
}

// ErrUnknownStatus indicates a status outside the closed set.
type ErrUnknownStatus struct {
	Status string
}

func (e *ErrUnknownStatus) Error() string {
	return fmt.Sprintf("unknown application status: %q", e.Status)
}

// ErrInvalidTransition indicates a status change the state machine forbids.
type ErrInvalidTransition struct {
	From types.Status
	To   types.Status
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot move application from %s to %s", e.From, e.To)
}

// HTTPStatus returns the HTTP status code for an error anywhere in its chain.
func HTTPStatus(err error) int {
	var (
		emailExists       *ErrEmailAlreadyExists
		invalidCreds      *ErrInvalidCredentials
		profileNotFound   *ErrProfileNotFound
		jobNotFound       *ErrJobNotFound
		resumeNotFound    *ErrResumeNotFound
		appNotFound       *ErrApplicationNotFound
		alreadyApplied    *ErrAlreadyApplied
		unknownStatus     *ErrUnknownStatus
		invalidTransition *ErrInvalidTransition
		upstream          *llm.UpstreamError
		validation        *schemas.ValidationError
	)

	switch {
	case errors.As(err, &emailExists), errors.As(err, &alreadyApplied), errors.As(err, &invalidTransition):
		return http.StatusConflict
	case errors.As(err, &invalidCreds):
		return http.StatusUnauthorized
	case errors.As(err, &profileNotFound), errors.As(err, &jobNotFound),
		errors.As(err, &resumeNotFound), errors.As(err, &appNotFound):
		return http.StatusNotFound
	case errors.As(err, &unknownStatus), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
