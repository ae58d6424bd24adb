package server

import (
	"context"
	"fmt"
	"time"

	"github.com/jordan/autoapply/internal/config"
	"github.com/jordan/autoapply/internal/db"
	"github.com/jordan/autoapply/internal/types"
)

// UserService provides business logic for user authentication operations
type UserService struct {
	users          UserStore
	profiles       ProfileStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(users UserStore, profiles ProfileStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		users:          users,
		profiles:       profiles,
		passwordConfig: passwordConfig,
	}
}

// convertDBUserToTypesUser converts db.User to types.User, excluding password hash
func convertDBUserToTypesUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:        dbUser.ID,
		Name:      dbUser.Name,
		Email:     dbUser.Email,
		CreatedAt: dbUser.CreatedAt,
	}
}

// Register creates a new user and seeds an empty profile pre-filled with the
// user's name and email.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	exists, err := s.users.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dbUser, err := s.users.CreateUser(ctx, req.Email, req.Name, passwordHash)
	if err != nil {
		// Concurrent registration with the same email races past the
		// existence check; the unique index is the backstop.
		if db.IsUniqueViolation(err) {
			return nil, &ErrEmailAlreadyExists{Email: req.Email}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := &types.Profile{
		UserID:         dbUser.ID,
		Name:           dbUser.Name,
		Email:          dbUser.Email,
		Education:      []types.EducationEntry{},
		Skills:         []string{},
		Projects:       []types.ProjectEntry{},
		Experience:     []types.ExperienceEntry{},
		PreferredRoles: []string{},
		UpdatedAt:      time.Now().UTC(),
	}
	if err := s.profiles.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to seed profile: %w", err)
	}

	return convertDBUserToTypesUser(dbUser), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: Always return generic error if user not found or password wrong
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return convertDBUserToTypesUser(dbUser), nil
}
