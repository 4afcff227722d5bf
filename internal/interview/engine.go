package interview

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// TurnRequest is one client turn. The client owns the in-progress state and
// resends it every turn; the server holds nothing between requests except
// the append-only session log.
type TurnRequest struct {
	Message   string            `json:"message"`
	Step      int               `json:"step"`
	Data      map[string]string `json:"data"`
	SessionID string            `json:"session_id,omitempty"`
}

// TurnResponse is the outcome of one turn. Exactly one of the protocol
// shapes is populated: advisory (KeepStep), advance (NextStep set), or
// finished.
type TurnResponse struct {
	Response    string            `json:"response,omitempty"`
	Question    string            `json:"question,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
	NextStep    *int              `json:"next_step,omitempty"`
	KeepStep    bool              `json:"keep_step,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
	Finished    bool              `json:"finished,omitempty"`
	SessionID   string            `json:"session_id,omitempty"`
}

// TurnRecord is one append-only session log entry.
type TurnRecord struct {
	Timestamp time.Time
	StepIndex int
	UserText  string
	AIText    string
	Snapshot  map[string]string
}

// Suggester produces suggestion chips for a step. Implementations degrade to
// static defaults on failure; suggestions are advisory and never block.
type Suggester interface {
	Suggestions(ctx context.Context, field string, draft map[string]string) []string
}

// TurnLogger appends turn records to the durable session log. Logging is
// best-effort: errors are swallowed by the engine and never fail a turn.
type TurnLogger interface {
	Record(ctx context.Context, sessionID string, rec TurnRecord) error
}

// Engine orchestrates one interview turn: command routing, validation,
// field assignment, next-step resolution, suggestions, and logging.
type Engine struct {
	catalog *Catalog
	router  *CommandRouter
	suggest Suggester
	logger  TurnLogger
}

// NewEngine creates an engine. suggest and logger may be nil; the engine
// then uses static suggestions and skips logging.
func NewEngine(catalog *Catalog, router *CommandRouter, suggest Suggester, logger TurnLogger) *Engine {
	return &Engine{catalog: catalog, router: router, suggest: suggest, logger: logger}
}

// Turn runs one request/response cycle. Validation and generation failures
// are returned as *ErrValidation / *ErrGeneration; in both cases nothing was
// mutated and the caller keeps the current step.
func (e *Engine) Turn(ctx context.Context, req TurnRequest) (*TurnResponse, error) {
	step := req.Step
	if step < NotStarted || step >= e.catalog.Count() {
		step = NotStarted
	}
	draft := cloneDraft(req.Data)

	if step == NotStarted {
		resp := e.start(ctx, draft, req.SessionID)
		e.record(ctx, req, resp.Response+" "+resp.Question)
		return resp, nil
	}

	current, _ := e.catalog.StepAt(step)

	if cmd, ok := ParseCommand(req.Message); ok {
		result, err := e.router.Handle(ctx, cmd, current, draft)
		if err != nil {
			e.record(ctx, req, err.Error())
			return nil, err
		}
		if result.Finished {
			resp := &TurnResponse{
				Response:  result.Response,
				Finished:  true,
				Data:      draft,
				SessionID: req.SessionID,
			}
			e.record(ctx, req, resp.Response)
			return resp, nil
		}
		resp := &TurnResponse{
			Response:    result.Response,
			Suggestions: result.Suggestions,
			KeepStep:    true,
			Question:    current.Prompt,
			SessionID:   req.SessionID,
		}
		e.record(ctx, req, resp.Response)
		return resp, nil
	}

	if err := Validate(current, req.Message); err != nil {
		e.record(ctx, req, err.Error())
		return nil, err
	}

	// Re-answering a field overwrites the existing value in place.
	draft[current.Field] = strings.TrimSpace(req.Message)

	next := NextStep(e.catalog, draft, step)
	if next == Finished {
		resp := &TurnResponse{
			Response:  "Your profile is complete. Use the form on the right to submit.",
			Finished:  true,
			Data:      draft,
			SessionID: req.SessionID,
		}
		e.record(ctx, req, resp.Response)
		return resp, nil
	}

	nextStep, _ := e.catalog.StepAt(next)
	resp := &TurnResponse{
		Response:    acknowledge(current),
		NextStep:    &next,
		Question:    nextStep.Prompt,
		Suggestions: e.suggestionsFor(ctx, nextStep, draft),
		Data:        draft,
		SessionID:   req.SessionID,
	}
	e.record(ctx, req, resp.Response+" "+resp.Question)
	return resp, nil
}

// start handles the NotStarted state: welcome (or resume) text plus the
// first unresolved step's prompt.
func (e *Engine) start(ctx context.Context, draft map[string]string, sessionID string) *TurnResponse {
	greeting := "Hi! I'm your resume assistant. I'll walk you through a few questions to build your profile."
	if strings.TrimSpace(draft["full_name"]) != "" {
		greeting = fmt.Sprintf("Welcome back, %s! Let's pick up where we left off.", draft["full_name"])
	}

	next := NextStep(e.catalog, draft, NotStarted)
	nextStep, _ := e.catalog.StepAt(next)

	return &TurnResponse{
		Response:    greeting,
		NextStep:    &next,
		Question:    nextStep.Prompt,
		Suggestions: e.suggestionsFor(ctx, nextStep, draft),
		Data:        draft,
		SessionID:   sessionID,
	}
}

func (e *Engine) suggestionsFor(ctx context.Context, step StepDefinition, draft map[string]string) []string {
	if e.suggest == nil || step.Type == FieldTerminal {
		return step.Suggestions
	}
	return e.suggest.Suggestions(ctx, step.Field, draft)
}

func (e *Engine) record(ctx context.Context, req TurnRequest, aiText string) {
	if e.logger == nil || req.SessionID == "" {
		return
	}
	// Best-effort: a log failure never blocks the interview.
	_ = e.logger.Record(ctx, req.SessionID, TurnRecord{
		Timestamp: time.Now().UTC(),
		StepIndex: req.Step,
		UserText:  req.Message,
		AIText:    strings.TrimSpace(aiText),
		Snapshot:  req.Data,
	})
}

func acknowledge(step StepDefinition) string {
	switch step.Field {
	case "full_name":
		return "Nice to meet you! ✅"
	case "summary":
		return "That summary reads well. ✅"
	default:
		return "Got it! ✅"
	}
}

func cloneDraft(data map[string]string) map[string]string {
	draft := make(map[string]string, len(data))
	for k, v := range data {
		draft[k] = v
	}
	return draft
}
