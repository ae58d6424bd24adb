package server

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/autoapply/internal/config"
	"github.com/jordan/autoapply/internal/types"
)

func TestUserService_Register_RaceOnUniqueIndex(t *testing.T) {
	store := newFakeStore()
	service := NewUserService(store, store, &config.PasswordConfig{BcryptCost: 10})

	// The existence pre-check passed but the insert hit the unique index
	store.createUserErr = &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	_, err := service.Register(context.Background(), &types.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	var dup *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "alice@example.com", dup.Email)
}

func TestUserService_Register_OtherInsertErrorIsNotConflict(t *testing.T) {
	store := newFakeStore()
	service := NewUserService(store, store, &config.PasswordConfig{BcryptCost: 10})

	store.createUserErr = errors.New("connection reset")

	_, err := service.Register(context.Background(), &types.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	var dup *ErrEmailAlreadyExists
	assert.False(t, errors.As(err, &dup))
}

func TestUserService_Login_PasswordRoundTrip(t *testing.T) {
	store := newFakeStore()
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	service := NewUserService(store, store, passwordConfig)

	registered, err := service.Register(context.Background(), &types.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	user, err := service.Login(context.Background(), &types.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = service.Login(context.Background(), &types.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}
