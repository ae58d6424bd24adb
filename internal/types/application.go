package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Status is the lifecycle state of an application. The set is closed and
// transitions are validated; see CanTransition.
type Status string

// Application statuses.
const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusRejected  Status = "Rejected"
	StatusWithdrawn Status = "Withdrawn"
)

// validTransitions maps each status to the statuses it may move to.
// Offer, Rejected and Withdrawn are terminal.
var validTransitions = map[Status][]Status{
	StatusApplied:   {StatusInterview, StatusRejected, StatusWithdrawn},
	StatusInterview: {StatusOffer, StatusRejected, StatusWithdrawn},
	StatusOffer:     {},
	StatusRejected:  {},
	StatusWithdrawn: {},
}

// ParseStatus returns the Status for s, or an error if s is not one of the
// closed set.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if _, ok := validTransitions[status]; !ok {
		return "", fmt.Errorf("unknown application status: %q", s)
	}
	return status, nil
}

// CanTransition reports whether an application may move from one status to
// another.
func CanTransition(from, to Status) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Application records one submission against a catalog job: the composed
// resume, the cover letter, and the tracked status. At most one exists per
// (user, job) pair, enforced by a unique index in the applications table.
type Application struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	JobID       string    `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	Company     string    `json:"company"`
	Status      Status    `json:"status"`
	ResumeID    uuid.UUID `json:"resume_id"`
	CoverLetter string    `json:"cover_letter"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ApplyRequest is the body for POST /jobs/apply.
type ApplyRequest struct {
	JobID string `json:"job_id" validate:"required"`
}

// UpdateApplicationRequest is the body for PUT /applications/{id}.
type UpdateApplicationRequest struct {
	Status string `json:"status" validate:"required"`
}

// Validate validates the ApplyRequest using the validator.
func (r *ApplyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateApplicationRequest using the validator.
func (r *UpdateApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
