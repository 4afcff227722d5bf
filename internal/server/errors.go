package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/interview"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var verr *interview.ErrValidation
	var gerr *interview.ErrGeneration
	var merr *interview.ErrMissingFields
	switch {
	case errors.As(err, &verr), errors.As(err, &merr):
		return http.StatusBadRequest
	case errors.As(err, &gerr):
		return http.StatusBadGateway
	case errors.Is(err, db.ErrProfileNotFound), errors.Is(err, db.ErrConversationNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
