package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeRequest() SubmitProfileRequest {
	return SubmitProfileRequest{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "555-123-4567",
		ExperienceLevel: "Senior",
		JobTitle:        "Backend Engineer",
		Skills:          "Go, SQL",
		Summary:         "Engineer.",
	}
}

func TestSubmitProfileRequest_CompleteIsValid(t *testing.T) {
	req := completeRequest()
	assert.NoError(t, req.Validate())
	assert.Empty(t, req.MissingFields())
}

func TestSubmitProfileRequest_MissingFieldsNamed(t *testing.T) {
	req := completeRequest()
	req.Phone = ""
	req.Summary = ""

	missing := req.MissingFields()
	assert.Equal(t, []string{"phone", "summary"}, missing)
}

func TestSubmitProfileRequest_BadEmailReported(t *testing.T) {
	req := completeRequest()
	req.Email = "not-an-email"
	assert.Contains(t, req.MissingFields(), "email")
}

func TestSubmitProfileRequest_FieldsRoundTrip(t *testing.T) {
	req := completeRequest()
	fields := req.Fields()
	assert.Equal(t, "Jane Doe", fields["full_name"])
	assert.Len(t, fields, 7)
}
