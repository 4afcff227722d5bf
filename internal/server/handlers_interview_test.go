package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/interview"
)

func postResumeChat(t *testing.T, s *Server, req interview.TurnRequest) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, "/api/resume-chat", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleResumeChat(w, httpReq)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHandleResumeChat_FirstTurnMintsSession(t *testing.T) {
	s := newTestServer(&fakeLLM{})

	w, resp := postResumeChat(t, s, interview.TurnRequest{Step: -1})

	assert.Equal(t, http.StatusOK, w.Code)
	sessionID, _ := resp["session_id"].(string)
	_, err := uuid.Parse(sessionID)
	assert.NoError(t, err, "server should mint a session key")
	assert.EqualValues(t, 0, resp["next_step"])
	assert.NotEmpty(t, resp["question"])
}

func TestHandleResumeChat_SessionKeyEchoedBack(t *testing.T) {
	s := newTestServer(&fakeLLM{})
	key := uuid.New().String()

	_, resp := postResumeChat(t, s, interview.TurnRequest{Step: -1, SessionID: key})

	assert.Equal(t, key, resp["session_id"])
}

func TestHandleResumeChat_ValidationErrorKeepsStep(t *testing.T) {
	s := newTestServer(&fakeLLM{})

	w, resp := postResumeChat(t, s, interview.TurnRequest{
		Message: "John3",
		Step:    0,
		Data:    map[string]string{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, resp["error"])
	assert.Equal(t, true, resp["keep_step"])
}

func TestHandleResumeChat_AdvanceCarriesData(t *testing.T) {
	s := newTestServer(&fakeLLM{})

	w, resp := postResumeChat(t, s, interview.TurnRequest{
		Message: "Jane Doe",
		Step:    0,
		Data:    map[string]string{},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", data["full_name"])
	assert.EqualValues(t, 1, resp["next_step"])
}

func TestHandleResumeChat_GenerationFailureSurfaced(t *testing.T) {
	s := newTestServer(&fakeLLM{err: errors.New("upstream down")})
	c := interview.NewCatalog()

	w, resp := postResumeChat(t, s, interview.TurnRequest{
		Message: "suggest skills",
		Step:    c.IndexOf("skills"),
		Data:    map[string]string{"job_title": "Backend Engineer"},
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, true, resp["keep_step"])
	assert.Contains(t, resp["error"], "try again")
}

func TestHandleResumeChat_SubmitCommandFinishes(t *testing.T) {
	s := newTestServer(&fakeLLM{})
	c := interview.NewCatalog()

	w, resp := postResumeChat(t, s, interview.TurnRequest{
		Message: "submit",
		Step:    c.TerminalIndex(),
		Data:    map[string]string{},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["finished"])
}

func TestHandleResumeChat_BadJSON(t *testing.T) {
	s := newTestServer(&fakeLLM{})
	httpReq := httptest.NewRequest(http.MethodPost, "/api/resume-chat", bytes.NewReader([]byte("{nope")))
	w := httptest.NewRecorder()

	s.handleResumeChat(w, httpReq)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
