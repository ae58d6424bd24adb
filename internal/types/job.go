package types

import "time"

// Job is a catalog posting. CompatibilityScore is request-scoped: it is
// recomputed against the caller's profile on every search and never persisted.
type Job struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Company            string    `json:"company"`
	Location           string    `json:"location"`
	Description        string    `json:"description"`
	Requirements       []string  `json:"requirements"`
	SalaryRange        string    `json:"salary_range,omitempty"`
	JobType            string    `json:"job_type"`
	Platform           string    `json:"platform"`
	PostedDate         time.Time `json:"posted_date"`
	CompatibilityScore int       `json:"compatibility_score"`
}
