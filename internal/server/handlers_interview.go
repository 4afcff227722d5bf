package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/interview"
)

// turnError is the turn protocol's error shape: the client keeps the
// current step and may retry.
type turnError struct {
	Error     string `json:"error"`
	KeepStep  bool   `json:"keep_step"`
	SessionID string `json:"session_id,omitempty"`
}

// handleResumeChat runs one interview turn.
func (s *Server) handleResumeChat(w http.ResponseWriter, r *http.Request) {
	var req interview.TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// The server mints a session key when the client has none; the client
	// resends it on every later turn.
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}
	if req.Data == nil {
		req.Data = map[string]string{}
	}

	resp, err := s.engine.Turn(r.Context(), req)
	if err != nil {
		var verr *interview.ErrValidation
		var gerr *interview.ErrGeneration
		if errors.As(err, &verr) || errors.As(err, &gerr) {
			s.jsonResponse(w, HTTPStatus(err), turnError{
				Error:     err.Error(),
				KeepStep:  true,
				SessionID: req.SessionID,
			})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Interview turn failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
