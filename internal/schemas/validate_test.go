package schemas

import (
	"errors"
	"testing"

	rootschemas "github.com/italia-opensource/awesome-italia-opensource/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_Valid(t *testing.T) {
	err := ValidateDocument(rootschemas.Company, []byte(`{"name": "Acme", "tags": ["b2b"]}`))
	assert.NoError(t, err)
}

func TestValidateDocument_MissingField(t *testing.T) {
	err := ValidateDocument(rootschemas.Company, []byte(`{"tags": []}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "name")
}

func TestValidateDocument_WrongType(t *testing.T) {
	err := ValidateDocument(rootschemas.Company, []byte(`{"name": 42, "tags": []}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "name", validationErr.Errors[0].Field)
}

func TestValidateDocument_MalformedJSON(t *testing.T) {
	err := ValidateDocument(rootschemas.Company, []byte("{ invalid json }"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON document")

	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("nope.schema.json", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "nope.schema.json", loadErr.Path)
}

func TestValidateDocument_CachesCompiledSchema(t *testing.T) {
	require.NoError(t, ValidateDocument(rootschemas.OpenSourceProject, []byte(`{
		"name": "x", "repository_url": "https://github.com/o/r",
		"repository_platform": "github", "license": "MIT", "tags": []
	}`)))

	compiledMu.Lock()
	_, ok := compiled[rootschemas.OpenSourceProject]
	compiledMu.Unlock()
	assert.True(t, ok)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "name", Message: "is required"},
		{Field: "tags", Message: "Invalid type"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed:")
	assert.Contains(t, msg, "1. name: is required")
	assert.Contains(t, msg, "2. tags: Invalid type")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["a"]}`
	assert.NoError(t, ValidateJSONString(schema, `{"a": 1}`))
	assert.Error(t, ValidateJSONString(schema, `{}`))
}
