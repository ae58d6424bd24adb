package types

import (
	"time"

	"github.com/google/uuid"
)

// EducationEntry is one education item on a profile. All fields beyond the
// institution are optional free text.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ExperienceEntry is one employment item on a profile.
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectEntry is one project item on a profile.
type ProjectEntry struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Profile is the single mutable profile document owned by a user. PUT /profile
// replaces it wholesale; UserID and UpdatedAt are always set server-side.
type Profile struct {
	UserID         uuid.UUID         `json:"user_id"`
	Name           string            `json:"name" validate:"required"`
	Email          string            `json:"email" validate:"required,email"`
	Phone          string            `json:"phone,omitempty"`
	Location       string            `json:"location,omitempty"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Projects       []ProjectEntry    `json:"projects"`
	Experience     []ExperienceEntry `json:"experience"`
	PreferredRoles []string          `json:"preferred_roles"`
	Summary        string            `json:"summary,omitempty"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
