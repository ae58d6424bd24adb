package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/autoapply/internal/types"
)

func registerBody(name, email, password string) *strings.Reader {
	body, _ := json.Marshal(map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	return strings.NewReader(string(body))
}

func TestRegister_Success(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", registerBody("Alice", "alice@example.com", "password123"))
	rec := ts.do(req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	// The token is immediately usable
	userID, err := ts.server.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)

	// Registration seeds an empty profile carrying name and email
	profile, err := ts.store.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Empty(t, profile.Skills)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodPost, "/api/auth/register", registerBody("Alice", "alice@example.com", "password123")))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(httptest.NewRequest(http.MethodPost, "/api/auth/register", registerBody("Other Alice", "alice@example.com", "password456")))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_Validation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com","password":"password123"}`},
		{"missing email", `{"name":"Alice","password":"password123"}`},
		{"invalid email", `{"name":"Alice","email":"not-an-email","password":"password123"}`},
		{"short password", `{"name":"Alice","email":"a@b.com","password":"short"}`},
		{"not json", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodPost, "/api/auth/register", registerBody("Alice", "alice@example.com", "password123")))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := strings.NewReader(`{"email":"alice@example.com","password":"password123"}`)
	rec = ts.do(httptest.NewRequest(http.MethodPost, "/api/auth/login", body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodPost, "/api/auth/register", registerBody("Alice", "alice@example.com", "password123")))
	require.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"alice@example.com","password":"wrong-password"}`},
		{"unknown email", `{"email":"nobody@example.com","password":"password123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			// Identical message for both failure modes
			assert.Contains(t, rec.Body.String(), "invalid email or password")
		})
	}
}
