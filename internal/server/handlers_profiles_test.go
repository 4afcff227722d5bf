package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestHandleSubmitProfile_MissingFieldsListedExactly(t *testing.T) {
	s := newTestServer(&fakeLLM{})

	req := types.SubmitProfileRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		// phone, experience_level, job_title, skills, summary absent
	}
	body, _ := json.Marshal(req)
	httpReq := httptest.NewRequest(http.MethodPost, "/api/submit-resume", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.handleSubmitProfile(w, httpReq)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Error         string   `json:"error"`
		MissingFields []string `json:"missing_fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"phone", "experience_level", "job_title", "skills", "summary"}, resp.MissingFields)
	assert.Contains(t, resp.Error, "missing mandatory fields")
}

func TestHandleSubmitProfile_BadJSON(t *testing.T) {
	s := newTestServer(&fakeLLM{})
	httpReq := httptest.NewRequest(http.MethodPost, "/api/submit-resume", bytes.NewReader([]byte("{nope")))
	w := httptest.NewRecorder()

	s.handleSubmitProfile(w, httpReq)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetProfile_InvalidID(t *testing.T) {
	s := newTestServer(&fakeLLM{})
	httpReq := httptest.NewRequest(http.MethodGet, "/api/profiles/not-a-uuid", nil)
	httpReq.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetProfile(w, httpReq)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
