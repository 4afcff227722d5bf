package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/interview"
	"github.com/jonathan/resume-builder/internal/types"
)

// handleSubmitProfile persists a completed profile. This is the
// authoritative completeness check; the interview's `submit` command does
// not gate.
func (s *Server) handleSubmitProfile(w http.ResponseWriter, r *http.Request) {
	var req types.SubmitProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		// No partial write: the profile is rejected before touching storage.
		err := &interview.ErrMissingFields{Fields: missing}
		s.jsonResponse(w, HTTPStatus(err), map[string]any{
			"error":          err.Error(),
			"missing_fields": missing,
		})
		return
	}

	profile, err := s.db.SaveProfile(r.Context(), req.Fields(), req.SessionID, req.UploadID)
	if err != nil {
		log.Printf("Failed to save profile: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"success":    true,
		"profile_id": profile.ID,
		"message":    "Your profile has been submitted.",
	})
}

// handleGetProfile returns a previously submitted profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile id")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrProfileNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Profile not found")
			return
		}
		log.Printf("Failed to get profile: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}
