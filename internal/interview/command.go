package interview

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
)

// Command is a recognized free-text directive. Commands take priority over
// field validation: a command is never interpreted as a field value.
type Command string

const (
	// CmdGenerate drafts summary options (summary step)
	CmdGenerate Command = "generate"
	// CmdSuggestSkills asks for skill ideas based on the draft so far
	CmdSuggestSkills Command = "suggest skills"
	// CmdShowExample shows an example answer for the current step
	CmdShowExample Command = "show example"
	// CmdCritique reviews the draft profile
	CmdCritique Command = "critique"
	// CmdATSScore scores the draft for ATS friendliness
	CmdATSScore Command = "check ats score"
	// CmdSubmit signals completion; the submission endpoint re-validates
	CmdSubmit Command = "submit"
)

// summaryOptionCount is how many drafts `generate` requests.
const summaryOptionCount = 3

// summaryDelimiter separates drafted options in the LLM response.
const summaryDelimiter = "|||"

// ParseCommand matches input against the known commands, case-insensitively
// and ignoring surrounding whitespace. `generate options` is an alias for
// `generate`.
func ParseCommand(input string) (Command, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "generate", "generate options":
		return CmdGenerate, true
	case "suggest skills":
		return CmdSuggestSkills, true
	case "show example":
		return CmdShowExample, true
	case "critique":
		return CmdCritique, true
	case "check ats score":
		return CmdATSScore, true
	case "submit":
		return CmdSubmit, true
	}
	return "", false
}

// CommandResult is the advisory outcome of a command. The step pointer is
// never advanced and the draft is never written by a command.
type CommandResult struct {
	Response    string
	Suggestions []string
	Finished    bool
}

// CommandRouter executes recognized commands against the LLM. Each command,
// except submit, issues exactly one prompt.
type CommandRouter struct {
	llm llm.Client
}

// NewCommandRouter creates a router backed by the given LLM client.
func NewCommandRouter(client llm.Client) *CommandRouter {
	return &CommandRouter{llm: client}
}

// Handle runs one command for the current step and draft. An LLM failure is
// returned as *ErrGeneration; the caller surfaces it without advancing.
func (r *CommandRouter) Handle(ctx context.Context, cmd Command, step StepDefinition, draft map[string]string) (*CommandResult, error) {
	switch cmd {
	case CmdSubmit:
		return &CommandResult{
			Response: "Great! Finalizing your profile...",
			Finished: true,
		}, nil

	case CmdGenerate:
		prompt, err := prompts.Render("interview.json", "generate_summary", map[string]string{
			"Count":   strconv.Itoa(summaryOptionCount),
			"Profile": FormatDraft(draft),
		})
		if err != nil {
			return nil, &ErrGeneration{Command: string(cmd), Cause: err}
		}
		text, err := r.llm.GenerateContent(ctx, prompt, llm.TierStandard)
		if err != nil {
			return nil, &ErrGeneration{Command: string(cmd), Cause: err}
		}
		options := llm.SplitList(text, summaryDelimiter, summaryOptionCount)
		if len(options) == 0 {
			return nil, &ErrGeneration{Command: string(cmd), Cause: fmt.Errorf("empty response")}
		}
		return &CommandResult{
			Response:    "Here are some summary drafts. Click one to use it, or write your own.",
			Suggestions: options,
		}, nil

	case CmdSuggestSkills:
		prompt, err := prompts.Render("interview.json", "suggest_skills", map[string]string{
			"Profile": FormatDraft(draft),
		})
		if err != nil {
			return nil, &ErrGeneration{Command: string(cmd), Cause: err}
		}
		text, err := r.llm.GenerateContent(ctx, prompt, llm.TierLite)
		if err != nil {
			return nil, &ErrGeneration{Command: string(cmd), Cause: err}
		}
		return &CommandResult{
			Response:    "Here are some skills that could fit your profile:",
			Suggestions: llm.SplitList(text, ",", 6),
		}, nil

	case CmdShowExample:
		prompt, err := prompts.Render("interview.json", "show_example", map[string]string{
			"Field":   step.Field,
			"Profile": FormatDraft(draft),
		})
		if err != nil {
			return nil, &ErrGeneration{Command: string(cmd), Cause: err}
		}
		text, err := r.llm.GenerateContent(ctx, prompt, llm.TierLite)
		if err != nil {
			return nil, &ErrGeneration{Command: string(cmd), Cause: err}
		}
		return &CommandResult{Response: text}, nil

	case CmdCritique, CmdATSScore:
		key := "critique"
		if cmd == CmdATSScore {
			key = "ats_score"
		}
		prompt, err := prompts.Render("interview.json", key, map[string]string{
			"Profile": FormatDraft(draft),
		})
		if err != nil {
			return nil, &ErrGeneration{Command: string(cmd), Cause: err}
		}
		text, err := r.llm.GenerateContent(ctx, prompt, llm.TierStandard)
		if err != nil {
			return nil, &ErrGeneration{Command: string(cmd), Cause: err}
		}
		return &CommandResult{Response: text}, nil
	}

	return nil, fmt.Errorf("unknown command %q", cmd)
}

// FormatDraft renders the draft as stable "field: value" lines for prompts.
func FormatDraft(draft map[string]string) string {
	if len(draft) == 0 {
		return "(no details collected yet)"
	}
	keys := make([]string, 0, len(draft))
	for k := range draft {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		if draft[k] == "" {
			continue
		}
		fmt.Fprintf(&sb, "%s: %s\n", k, draft[k])
	}
	return strings.TrimSpace(sb.String())
}
