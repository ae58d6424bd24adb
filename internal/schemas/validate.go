// Package schemas provides JSON Schema validation for loosely structured
// documents accepted over the API. The profile document keeps free-form
// education/experience/project entries, so struct tags alone cannot check it;
// the embedded schema does.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var profileSchemaJSON []byte

var profileSchema = gojsonschema.NewBytesLoader(profileSchemaJSON)

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field-level violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("profile validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateProfile validates a raw profile document against the embedded
// schema. Returns *ValidationError when the document is well-formed JSON but
// violates the schema.
func ValidateProfile(document []byte) error {
	result, err := gojsonschema.Validate(profileSchema, gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("profile validation could not run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
