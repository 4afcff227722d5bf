// Package interview implements the guided resume interview: a fixed step
// catalog, per-field validation, next-step resolution, free-text command
// routing, and the engine that runs one request/response turn.
package interview

// FieldType selects the validation rule applied to a step's input.
type FieldType string

const (
	// FieldName is name-like free text: no digits, at least two characters
	FieldName FieldType = "name"
	// FieldEmail requires a local-part@domain.tld shape
	FieldEmail FieldType = "email"
	// FieldPhone requires at least ten digit characters
	FieldPhone FieldType = "phone"
	// FieldChoice accepts any non-empty input; suggestions are hints, not an enum
	FieldChoice FieldType = "single_choice"
	// FieldLongText accepts any non-empty input
	FieldLongText FieldType = "long_text"
	// FieldTerminal is the review step; it accepts commands only
	FieldTerminal FieldType = "terminal"
)

// StepDefinition describes one question in the interview sequence.
type StepDefinition struct {
	Field       string
	Prompt      string
	Mandatory   bool
	Type        FieldType
	Suggestions []string // static defaults, used when dynamic suggestions are unavailable
}

// Catalog is the fixed, ordered list of interview steps. It is immutable
// after construction and safe for concurrent reads.
type Catalog struct {
	steps []StepDefinition
	index map[string]int
}

// NewCatalog returns the resume interview catalog. Order defines the default
// traversal; the resolver may skip ahead when earlier fields already exist.
func NewCatalog() *Catalog {
	steps := []StepDefinition{
		{
			Field:     "full_name",
			Prompt:    "What is your **full name**?",
			Mandatory: true,
			Type:      FieldName,
		},
		{
			Field:     "email",
			Prompt:    "What **email address** should employers use to reach you?",
			Mandatory: true,
			Type:      FieldEmail,
		},
		{
			Field:     "phone",
			Prompt:    "What is your **phone number**?",
			Mandatory: true,
			Type:      FieldPhone,
		},
		{
			Field:       "experience_level",
			Prompt:      "What is your **experience level**?",
			Mandatory:   true,
			Type:        FieldChoice,
			Suggestions: []string{"Entry-Level", "Mid-Level", "Senior", "Lead"},
		},
		{
			Field:       "job_title",
			Prompt:      "What **job title** are you targeting?",
			Mandatory:   true,
			Type:        FieldChoice,
			Suggestions: []string{"Software Engineer", "Data Analyst", "Product Manager"},
		},
		{
			Field:       "skills",
			Prompt:      "List your top **skills** (comma-separated). Type `suggest skills` for ideas.",
			Mandatory:   true,
			Type:        FieldLongText,
			Suggestions: []string{"Communication", "Problem Solving", "Teamwork", "Leadership", "Time Management"},
		},
		{
			Field:       "summary",
			Prompt:      "Write a short **professional summary**, or type `generate options` and I'll draft some for you.",
			Mandatory:   true,
			Type:        FieldLongText,
			Suggestions: []string{"generate options"},
		},
		{
			Field:       "review",
			Prompt:      "Your profile is complete. Type `critique` for feedback, `check ats score` for an ATS review, or `submit` to finish.",
			Mandatory:   false,
			Type:        FieldTerminal,
			Suggestions: []string{"critique", "check ats score", "submit"},
		},
	}

	index := make(map[string]int, len(steps))
	for i, s := range steps {
		index[s.Field] = i
	}
	return &Catalog{steps: steps, index: index}
}

// StepAt returns the step at index i.
func (c *Catalog) StepAt(i int) (StepDefinition, bool) {
	if i < 0 || i >= len(c.steps) {
		return StepDefinition{}, false
	}
	return c.steps[i], true
}

// IndexOf returns the index of the step holding field, or -1 when unknown.
func (c *Catalog) IndexOf(field string) int {
	i, ok := c.index[field]
	if !ok {
		return -1
	}
	return i
}

// Count returns the number of steps, including the terminal review step.
func (c *Catalog) Count() int {
	return len(c.steps)
}

// TerminalIndex returns the index of the terminal review step.
func (c *Catalog) TerminalIndex() int {
	return len(c.steps) - 1
}

// TerminalStep returns the terminal review step.
func (c *Catalog) TerminalStep() StepDefinition {
	return c.steps[len(c.steps)-1]
}

// MandatoryFields returns the field names of all mandatory steps in order.
func (c *Catalog) MandatoryFields() []string {
	fields := make([]string, 0, len(c.steps))
	for _, s := range c.steps {
		if s.Mandatory {
			fields = append(fields, s.Field)
		}
	}
	return fields
}
