package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfileExtraction_Valid(t *testing.T) {
	doc := []byte(`{
		"full_name": "Jane Doe",
		"email": "jane@example.com",
		"phone": "555-123-4567",
		"experience_level": "Senior",
		"job_title": "Backend Engineer",
		"skills": "Go, SQL",
		"summary": "Engineer."
	}`)
	assert.NoError(t, ValidateProfileExtraction(doc))
}

func TestValidateProfileExtraction_MissingKey(t *testing.T) {
	doc := []byte(`{"full_name": "Jane Doe"}`)
	err := ValidateProfileExtraction(doc)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidateProfileExtraction_ExtraKeyRejected(t *testing.T) {
	doc := []byte(`{
		"full_name": "Jane Doe",
		"email": "jane@example.com",
		"phone": "555-123-4567",
		"experience_level": "Senior",
		"job_title": "Backend Engineer",
		"skills": "Go, SQL",
		"summary": "Engineer.",
		"unexpected": "field"
	}`)
	assert.Error(t, ValidateProfileExtraction(doc))
}

func TestValidateProfileExtraction_NotJSON(t *testing.T) {
	assert.Error(t, ValidateProfileExtraction([]byte("not json")))
}
