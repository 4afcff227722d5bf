package interview

import "strings"

// Step index sentinels used by the turn protocol.
const (
	// NotStarted is the client's initial step value before the first turn.
	NotStarted = -1
	// Finished means every step, including the terminal review, is done.
	Finished = -2
)

// NextStep returns the index of the next step to ask given the collected
// draft and the step the client is currently on. It scans in catalog order
// and returns the first mandatory step whose field is absent, which lets a
// draft pre-populated out of order (e.g. from an uploaded resume) skip
// straight to the first gap. When no mandatory field is missing it returns
// the terminal review step once, then Finished.
func NextStep(c *Catalog, draft map[string]string, current int) int {
	for i, step := range c.steps {
		if !step.Mandatory {
			continue
		}
		if strings.TrimSpace(draft[step.Field]) == "" {
			return i
		}
	}
	if current != c.TerminalIndex() {
		return c.TerminalIndex()
	}
	return Finished
}
