// Package extract turns uploaded resume documents into plain text and,
// via the LLM, into pre-populated profile fields.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dslipak/pdf"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/schemas"
)

// maxPromptChars caps how much extracted text is handed to the LLM.
const maxPromptChars = 8000

// PDFText extracts plain text from a PDF, best-effort.
func PDFText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return buf.String(), nil
}

// Truncate limits text to maxPromptChars before it is prompted.
func Truncate(text string) string {
	if len(text) <= maxPromptChars {
		return text
	}
	return text[:maxPromptChars]
}

// ProfileFields asks the LLM to pull profile fields out of resume text and
// validates the result against the extraction schema. Only non-empty fields
// are returned.
func ProfileFields(ctx context.Context, client llm.Client, text string) (map[string]string, error) {
	prompt, err := prompts.Render("extraction.json", "profile", map[string]string{
		"Text": Truncate(text),
	})
	if err != nil {
		return nil, err
	}

	raw, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.ValidateProfileExtraction([]byte(raw)); err != nil {
		return nil, fmt.Errorf("extraction returned invalid profile: %w", err)
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("extraction returned invalid JSON: %w", err)
	}

	data := make(map[string]string, len(fields))
	for k, v := range fields {
		if strings.TrimSpace(v) != "" {
			data[k] = strings.TrimSpace(v)
		}
	}
	return data, nil
}
