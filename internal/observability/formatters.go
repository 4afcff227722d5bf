// Package observability provides formatted CLI output for inspecting stored
// profiles and session transcripts.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/interview"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxTextLen truncates long values in transcript lines
	maxTextLen = 48
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of a submitted profile.
func (p *Printer) PrintProfile(profile *types.SubmittedProfile) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID: %s\n", profile.ID)
	fmt.Fprintf(&sb, "Submitted: %s\n", profile.SubmittedAt.Format("2006-01-02 15:04:05"))
	if profile.SessionID != "" {
		fmt.Fprintf(&sb, "Session: %s\n", profile.SessionID)
	}
	sb.WriteString("\n")
	sb.WriteString(interview.FormatDraft(profile.Fields))
	p.printBox("SUBMITTED PROFILE", sb.String())
}

// PrintTranscript outputs a session's turn records in append order.
func (p *Printer) PrintTranscript(sessionID string, turns []interview.TurnRecord) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Session: %s (%d turns)\n", sessionID, len(turns))
	for i, rec := range turns {
		fmt.Fprintf(&sb, "%2d. [step %d] user: %s\n", i+1, rec.StepIndex, truncate(rec.UserText))
		fmt.Fprintf(&sb, "           bot: %s\n", truncate(rec.AIText))
	}
	p.printBox("SESSION TRANSCRIPT", sb.String())
}

func truncate(s string) string {
	if len(s) <= maxTextLen {
		return s
	}
	return s[:maxTextLen-3] + "..."
}
