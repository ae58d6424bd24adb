package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     RegisterRequest{Name: "Jane Doe", Email: "jane@example.com", Password: "password123"},
			wantErr: false,
		},
		{
			name:    "missing name",
			req:     RegisterRequest{Email: "jane@example.com", Password: "password123"},
			wantErr: true,
		},
		{
			name:    "invalid email",
			req:     RegisterRequest{Name: "Jane Doe", Email: "not-an-email", Password: "password123"},
			wantErr: true,
		},
		{
			name:    "password too short",
			req:     RegisterRequest{Name: "Jane Doe", Email: "jane@example.com", Password: "short"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{name: "valid request", req: LoginRequest{Email: "jane@example.com", Password: "pw"}, wantErr: false},
		{name: "missing email", req: LoginRequest{Password: "pw"}, wantErr: true},
		{name: "missing password", req: LoginRequest{Email: "jane@example.com"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
