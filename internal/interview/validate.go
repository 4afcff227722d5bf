package interview

import (
	"regexp"
	"strings"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPhoneDigits = 10

// Validate checks rawInput against the step's rule. It never mutates state;
// a failure is returned as *ErrValidation with a user-facing message and the
// caller keeps the current step.
func Validate(step StepDefinition, rawInput string) error {
	input := strings.TrimSpace(rawInput)

	if input == "" {
		if step.Mandatory {
			return &ErrValidation{Field: step.Field, Message: "This field is required. Please enter a value."}
		}
		return nil
	}

	switch step.Type {
	case FieldName:
		if len(input) < 2 {
			return &ErrValidation{Field: step.Field, Message: "That looks too short. Please enter your full name."}
		}
		for _, r := range input {
			if unicode.IsDigit(r) {
				return &ErrValidation{Field: step.Field, Message: "Names cannot contain numbers. Please try again."}
			}
		}
	case FieldEmail:
		if !emailPattern.MatchString(input) {
			return &ErrValidation{Field: step.Field, Message: "That doesn't look like a valid email address (e.g. jane@example.com)."}
		}
	case FieldPhone:
		if countDigits(input) < minPhoneDigits {
			return &ErrValidation{Field: step.Field, Message: "A phone number needs at least 10 digits. Please try again."}
		}
	case FieldChoice, FieldLongText:
		// Any non-empty input is accepted; suggestions are hints, not an enum.
	case FieldTerminal:
		return &ErrValidation{Field: step.Field, Message: "Your profile is complete. Type `critique`, `check ats score`, or `submit`."}
	}

	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
