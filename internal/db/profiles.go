package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jordan/autoapply/internal/types"
)

// UpsertProfile replaces a user's profile document wholesale. Exactly one
// profile row exists per user.
func (db *DB) UpsertProfile(ctx context.Context, profile *types.Profile) error {
	education, err := json.Marshal(emptyIfNilEdu(profile.Education))
	if err != nil {
		return fmt.Errorf("failed to marshal education: %w", err)
	}
	skills, err := json.Marshal(emptyIfNil(profile.Skills))
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	projects, err := json.Marshal(emptyIfNilProj(profile.Projects))
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}
	experience, err := json.Marshal(emptyIfNilExp(profile.Experience))
	if err != nil {
		return fmt.Errorf("failed to marshal experience: %w", err)
	}
	preferredRoles, err := json.Marshal(emptyIfNil(profile.PreferredRoles))
	if err != nil {
		return fmt.Errorf("failed to marshal preferred roles: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles
		   (user_id, name, email, phone, location, summary,
		    education, skills, projects, experience, preferred_roles, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (user_id) DO UPDATE SET
		   name = $2, email = $3, phone = $4, location = $5, summary = $6,
		   education = $7, skills = $8, projects = $9, experience = $10,
		   preferred_roles = $11, updated_at = $12`,
		profile.UserID, profile.Name, profile.Email, profile.Phone, profile.Location,
		profile.Summary, education, skills, projects, experience, preferredRoles,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a user's profile document, or (nil, nil) if the user
// has none.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	var (
		profile        types.Profile
		education      []byte
		skills         []byte
		projects       []byte
		experience     []byte
		preferredRoles []byte
	)

	err := db.pool.QueryRow(ctx,
		`SELECT user_id, name, email, phone, location, summary,
		        education, skills, projects, experience, preferred_roles, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.UserID, &profile.Name, &profile.Email, &profile.Phone,
		&profile.Location, &profile.Summary, &education, &skills, &projects,
		&experience, &preferredRoles, &profile.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal(education, &profile.Education); err != nil {
		return nil, fmt.Errorf("failed to unmarshal education: %w", err)
	}
	if err := json.Unmarshal(skills, &profile.Skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(projects, &profile.Projects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal projects: %w", err)
	}
	if err := json.Unmarshal(experience, &profile.Experience); err != nil {
		return nil, fmt.Errorf("failed to unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(preferredRoles, &profile.PreferredRoles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferred roles: %w", err)
	}

	return &profile, nil
}

// JSONB list columns store [] rather than null so reads always yield slices.

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyIfNilEdu(s []types.EducationEntry) []types.EducationEntry {
	if s == nil {
		return []types.EducationEntry{}
	}
	return s
}

func emptyIfNilExp(s []types.ExperienceEntry) []types.ExperienceEntry {
	if s == nil {
		return []types.ExperienceEntry{}
	}
	return s
}

func emptyIfNilProj(s []types.ProjectEntry) []types.ProjectEntry {
	if s == nil {
		return []types.ProjectEntry{}
	}
	return s
}
