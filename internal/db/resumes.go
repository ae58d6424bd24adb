package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jordan/autoapply/internal/types"
)

// CreateResume appends a new immutable resume row and returns the stored
// record. Regeneration for the same job never overwrites a prior resume.
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, jobTitle, jobDescription, content string, keywords []string) (*types.Resume, error) {
	keywordsJSON, err := json.Marshal(emptyIfNil(keywords))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keywords: %w", err)
	}

	resume := types.Resume{
		UserID:         userID,
		JobTitle:       jobTitle,
		JobDescription: jobDescription,
		Content:        content,
		Keywords:       emptyIfNil(keywords),
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, job_title, job_description, content, keywords)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		userID, jobTitle, jobDescription, content, keywordsJSON,
	).Scan(&resume.ID, &resume.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return &resume, nil
}

// GetResume retrieves a resume by ID, scoped to its owner. Returns (nil, nil)
// when the resume does not exist or belongs to another user.
func (db *DB) GetResume(ctx context.Context, resumeID, userID uuid.UUID) (*types.Resume, error) {
	var (
		resume   types.Resume
		keywords []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_title, job_description, content, keywords, created_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	).Scan(&resume.ID, &resume.UserID, &resume.JobTitle, &resume.JobDescription,
		&resume.Content, &keywords, &resume.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(keywords, &resume.Keywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
	}
	return &resume, nil
}

// ListResumes retrieves a user's resumes, newest first.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]types.Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_title, job_description, content, keywords, created_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	resumes := []types.Resume{}
	for rows.Next() {
		var (
			resume   types.Resume
			keywords []byte
		)
		if err := rows.Scan(&resume.ID, &resume.UserID, &resume.JobTitle,
			&resume.JobDescription, &resume.Content, &keywords, &resume.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		if err := json.Unmarshal(keywords, &resume.Keywords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}
