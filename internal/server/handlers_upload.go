package server

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/extract"
)

// maxUploadBytes caps uploaded resume documents at 10 MB.
const maxUploadBytes = 10 << 20

// handleUploadResume extracts profile fields from an uploaded PDF so the
// interview can skip straight to whatever is still missing.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		s.errorResponse(w, http.StatusBadRequest, "Only PDF uploads are supported")
		return
	}

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload")
		return
	}

	text, err := extract.PDFText(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		log.Printf("PDF extraction failed for %s: %v", header.Filename, err)
		s.errorResponse(w, http.StatusUnprocessableEntity, "Could not read text from that PDF")
		return
	}
	if strings.TrimSpace(text) == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "The PDF contains no extractable text")
		return
	}

	fields, err := extract.ProfileFields(r.Context(), s.llm, text)
	if err != nil {
		log.Printf("Profile extraction failed for %s: %v", header.Filename, err)
		s.errorResponse(w, http.StatusBadGateway, "Extraction failed, please fill in your details manually")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"upload_id": uuid.New().String(),
		"data":      fields,
		"message":   "I pulled these details from your resume. Let's fill in the rest.",
	})
}
