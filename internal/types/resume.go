package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GenerateResumeRequest is the body for POST /resume/generate.
type GenerateResumeRequest struct {
	JobTitle       string `json:"job_title" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// Resume is a generated resume. Rows are immutable once created; regenerating
// for the same job appends a new row rather than overwriting.
type Resume struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description"`
	Content        string    `json:"content"`
	Keywords       []string  `json:"keywords"`
	CreatedAt      time.Time `json:"created_at"`
}

// Validate validates the GenerateResumeRequest using the validator.
func (r *GenerateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
