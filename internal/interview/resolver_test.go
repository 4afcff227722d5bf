package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullDraft() map[string]string {
	return map[string]string{
		"full_name":        "Jane Doe",
		"email":            "jane@example.com",
		"phone":            "555-123-4567",
		"experience_level": "Senior",
		"job_title":        "Backend Engineer",
		"skills":           "Go, SQL, Kubernetes",
		"summary":          "Senior backend engineer with 8 years of experience.",
	}
}

func TestNextStep_EmptyDraftStartsAtFirstStep(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, 0, NextStep(c, map[string]string{}, NotStarted))
}

func TestNextStep_SkipsToFirstMissingMandatory(t *testing.T) {
	c := NewCatalog()
	draft := map[string]string{"full_name": "Jane Doe"}
	assert.Equal(t, c.IndexOf("email"), NextStep(c, draft, 0))
}

func TestNextStep_OutOfOrderCompletion(t *testing.T) {
	// Upload-derived data can fill later fields first; the resolver still
	// asks for the earliest gap instead of re-asking known fields.
	c := NewCatalog()
	draft := fullDraft()
	delete(draft, "phone")
	draft["summary"] = "Pre-filled from an uploaded resume."
	assert.Equal(t, c.IndexOf("phone"), NextStep(c, draft, NotStarted))
}

func TestNextStep_TerminalOnceThenFinished(t *testing.T) {
	c := NewCatalog()
	draft := fullDraft()

	next := NextStep(c, draft, c.IndexOf("summary"))
	assert.Equal(t, c.TerminalIndex(), next)

	assert.Equal(t, Finished, NextStep(c, draft, next))
}

func TestNextStep_BlankValueCountsAsMissing(t *testing.T) {
	c := NewCatalog()
	draft := fullDraft()
	draft["email"] = "   "
	assert.Equal(t, c.IndexOf("email"), NextStep(c, draft, 0))
}
