package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jordan/autoapply/internal/db"
	"github.com/jordan/autoapply/internal/types"
)

// UserStore persists user accounts.
type UserStore interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, email, name, passwordHash string) (*db.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
}

// ProfileStore persists per-user profile documents.
type ProfileStore interface {
	UpsertProfile(ctx context.Context, profile *types.Profile) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
}

// ResumeStore persists generated resumes.
type ResumeStore interface {
	CreateResume(ctx context.Context, userID uuid.UUID, jobTitle, jobDescription, content string, keywords []string) (*types.Resume, error)
	GetResume(ctx context.Context, resumeID, userID uuid.UUID) (*types.Resume, error)
	ListResumes(ctx context.Context, userID uuid.UUID) ([]types.Resume, error)
}

// ApplicationStore persists job applications.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, userID uuid.UUID, job types.Job, resumeID uuid.UUID, coverLetter string) (*types.Application, error)
	HasApplication(ctx context.Context, userID uuid.UUID, jobID string) (bool, error)
	GetApplication(ctx context.Context, applicationID, userID uuid.UUID) (*types.Application, error)
	ListApplications(ctx context.Context, userID uuid.UUID) ([]types.Application, error)
	UpdateApplicationStatus(ctx context.Context, applicationID, userID uuid.UUID, status types.Status) (bool, error)
}

// Stores bundles the storage interfaces a Server depends on. *db.DB
// satisfies all of them.
type Stores struct {
	Users        UserStore
	Profiles     ProfileStore
	Resumes      ResumeStore
	Applications ApplicationStore
}

// NewStores wires every store to the same database handle.
func NewStores(database *db.DB) Stores {
	return Stores{
		Users:        database,
		Profiles:     database,
		Resumes:      database,
		Applications: database,
	}
}
