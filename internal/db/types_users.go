package db

import (
	"time"

	"github.com/google/uuid"
)

// User is a stored account row. PasswordHash stays inside the db and auth
// layers and is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
