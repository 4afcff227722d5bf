package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/llm"
)

// fakeLLM is a canned llm.Client for engine and router tests.
type fakeLLM struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeLLM) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.response, f.err
}

func (f *fakeLLM) GenerateStream(_ context.Context, _ llm.StreamRequest, _ func(string) error) error {
	return f.err
}

func (f *fakeLLM) Close() error { return nil }

func TestParseCommand(t *testing.T) {
	cases := map[string]Command{
		"generate":         CmdGenerate,
		"Generate Options": CmdGenerate,
		"SUGGEST SKILLS":   CmdSuggestSkills,
		"show example":     CmdShowExample,
		"  critique  ":     CmdCritique,
		"Check ATS Score":  CmdATSScore,
		"submit":           CmdSubmit,
	}
	for input, want := range cases {
		cmd, ok := ParseCommand(input)
		assert.True(t, ok, "input %q", input)
		assert.Equal(t, want, cmd)
	}
}

func TestParseCommand_FieldTextIsNotACommand(t *testing.T) {
	_, ok := ParseCommand("Jane Doe")
	assert.False(t, ok)
	_, ok = ParseCommand("critique my resume please")
	assert.False(t, ok)
}

func TestHandle_SubmitNeedsNoLLM(t *testing.T) {
	fake := &fakeLLM{err: errors.New("should not be called")}
	r := NewCommandRouter(fake)

	result, err := r.Handle(context.Background(), CmdSubmit, NewCatalog().TerminalStep(), nil)
	require.NoError(t, err)
	assert.True(t, result.Finished)
	assert.Zero(t, fake.calls)
}

func TestHandle_GenerateSplitsOptions(t *testing.T) {
	fake := &fakeLLM{response: "First draft. ||| Second draft. ||| Third draft."}
	r := NewCommandRouter(fake)
	step := stepFor(t, "summary")

	result, err := r.Handle(context.Background(), CmdGenerate, step, fullDraft())
	require.NoError(t, err)
	assert.False(t, result.Finished)
	assert.Equal(t, []string{"First draft.", "Second draft.", "Third draft."}, result.Suggestions)
	assert.Equal(t, 1, fake.calls)
}

func TestHandle_GenerateFailureIsScoped(t *testing.T) {
	r := NewCommandRouter(&fakeLLM{err: errors.New("upstream down")})

	_, err := r.Handle(context.Background(), CmdGenerate, stepFor(t, "summary"), fullDraft())
	var gerr *ErrGeneration
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "generate", gerr.Command)
}

func TestHandle_SuggestSkillsCapsAtSix(t *testing.T) {
	fake := &fakeLLM{response: "Go, Python, SQL, Docker, Kubernetes, Terraform, Bash, AWS"}
	r := NewCommandRouter(fake)

	result, err := r.Handle(context.Background(), CmdSuggestSkills, stepFor(t, "skills"), fullDraft())
	require.NoError(t, err)
	assert.Len(t, result.Suggestions, 6)
}

func TestHandle_CritiqueIncludesProfile(t *testing.T) {
	fake := &fakeLLM{response: "Needs more quantification."}
	r := NewCommandRouter(fake)

	result, err := r.Handle(context.Background(), CmdCritique, NewCatalog().TerminalStep(), fullDraft())
	require.NoError(t, err)
	assert.Equal(t, "Needs more quantification.", result.Response)
	assert.Contains(t, fake.lastPrompt, "Jane Doe")
}

func TestFormatDraft_StableOrderAndSkipsEmpty(t *testing.T) {
	out := FormatDraft(map[string]string{"b_field": "2", "a_field": "1", "empty": ""})
	assert.Equal(t, "a_field: 1\nb_field: 2", out)
}
