package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfileAcceptsFullDocument(t *testing.T) {
	doc := []byte(`{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"phone": "555-0100",
		"location": "Remote",
		"skills": ["Go", "SQL"],
		"preferred_roles": ["Backend Developer"],
		"summary": "Engineer.",
		"education": [{"degree": "BSc", "field": "CS", "institution": "State U", "year": "2019"}],
		"experience": [{"title": "Engineer", "company": "Acme", "duration": "4y", "description": "APIs"}],
		"projects": [{"name": "tool", "description": "CLI"}]
	}`)
	assert.NoError(t, ValidateProfile(doc))
}

func TestValidateProfileAcceptsMinimalDocument(t *testing.T) {
	assert.NoError(t, ValidateProfile([]byte(`{"name": "Jane", "email": "jane@example.com"}`)))
}

func TestValidateProfileRejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", `{"email": "jane@example.com"}`},
		{"missing email", `{"name": "Jane"}`},
		{"empty name", `{"name": "", "email": "jane@example.com"}`},
		{"bad email format", `{"name": "Jane", "email": "not-an-email"}`},
		{"skills not strings", `{"name": "Jane", "email": "jane@example.com", "skills": [1, 2]}`},
		{"education not objects", `{"name": "Jane", "email": "jane@example.com", "education": ["BSc"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile([]byte(tt.doc))
			require.Error(t, err)

			ve, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidationErrorMessageNamesFields(t *testing.T) {
	err := ValidateProfile([]byte(`{"email": "jane@example.com"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}
