package interview

import (
	"fmt"
	"strings"
)

// ErrValidation indicates the user's input failed the current step's rule.
// The step pointer and draft are unchanged; the caller should keep the step.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

// ErrGeneration indicates an LLM call the user explicitly requested failed.
// The step pointer and draft are unchanged.
type ErrGeneration struct {
	Command string
	Cause   error
}

func (e *ErrGeneration) Error() string {
	return fmt.Sprintf("generation failed for %q, please try again or type your answer manually", e.Command)
}

func (e *ErrGeneration) Unwrap() error {
	return e.Cause
}

// ErrMissingFields indicates a submission is missing mandatory fields.
type ErrMissingFields struct {
	Fields []string
}

func (e *ErrMissingFields) Error() string {
	return fmt.Sprintf("missing mandatory fields: %s", strings.Join(e.Fields, ", "))
}
