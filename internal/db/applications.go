package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jordan/autoapply/internal/types"
)

// CreateApplication inserts a new application with status Applied. A second
// application for the same (user, job) violates the compound unique index;
// callers detect that with IsUniqueViolation.
func (db *DB) CreateApplication(ctx context.Context, userID uuid.UUID, job types.Job, resumeID uuid.UUID, coverLetter string) (*types.Application, error) {
	app := types.Application{
		UserID:      userID,
		JobID:       job.ID,
		JobTitle:    job.Title,
		Company:     job.Company,
		Status:      types.StatusApplied,
		ResumeID:    resumeID,
		CoverLetter: coverLetter,
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (user_id, job_id, job_title, company, status, resume_id, cover_letter)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, applied_at, updated_at`,
		userID, job.ID, job.Title, job.Company, types.StatusApplied, resumeID, coverLetter,
	).Scan(&app.ID, &app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &app, nil
}

// HasApplication reports whether the user already applied to the job.
func (db *DB) HasApplication(ctx context.Context, userID uuid.UUID, jobID string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}
	return exists, nil
}

// GetApplication retrieves an application by ID, scoped to its owner.
func (db *DB) GetApplication(ctx context.Context, applicationID, userID uuid.UUID) (*types.Application, error) {
	var app types.Application
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_id, job_title, company, status, resume_id, cover_letter, applied_at, updated_at
		 FROM applications WHERE id = $1 AND user_id = $2`,
		applicationID, userID,
	).Scan(&app.ID, &app.UserID, &app.JobID, &app.JobTitle, &app.Company,
		&app.Status, &app.ResumeID, &app.CoverLetter, &app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// ListApplications retrieves a user's applications, newest first.
func (db *DB) ListApplications(ctx context.Context, userID uuid.UUID) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_id, job_title, company, status, resume_id, cover_letter, applied_at, updated_at
		 FROM applications WHERE user_id = $1 ORDER BY applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	apps := []types.Application{}
	for rows.Next() {
		var app types.Application
		if err := rows.Scan(&app.ID, &app.UserID, &app.JobID, &app.JobTitle,
			&app.Company, &app.Status, &app.ResumeID, &app.CoverLetter,
			&app.AppliedAt, &app.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// UpdateApplicationStatus overwrites the status and updated_at of an owned
// application. Reports whether a row was actually updated.
func (db *DB) UpdateApplicationStatus(ctx context.Context, applicationID, userID uuid.UUID, status types.Status) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`,
		status, time.Now().UTC(), applicationID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update application status: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
