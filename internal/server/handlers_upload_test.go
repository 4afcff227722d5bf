package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, fieldName, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandleUploadResume_MissingFile(t *testing.T) {
	s := newTestServer(&fakeLLM{})
	req := multipartUpload(t, "wrong_field", "resume.pdf", []byte("x"))
	w := httptest.NewRecorder()

	s.handleUploadResume(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing file")
}

func TestHandleUploadResume_RejectsNonPDF(t *testing.T) {
	s := newTestServer(&fakeLLM{})
	req := multipartUpload(t, "file", "resume.docx", []byte("x"))
	w := httptest.NewRecorder()

	s.handleUploadResume(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PDF")
}

func TestHandleUploadResume_UnreadablePDF(t *testing.T) {
	s := newTestServer(&fakeLLM{})
	req := multipartUpload(t, "file", "resume.pdf", []byte("not really a pdf"))
	w := httptest.NewRecorder()

	s.handleUploadResume(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
