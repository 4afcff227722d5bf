package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/interview"
)

// SessionLogger adapts the database to interview.TurnLogger. Logging is
// best-effort: malformed session keys and database failures are swallowed so
// that a log write can never block the interview.
type SessionLogger struct {
	db *DB
}

// NewSessionLogger returns a logger backed by the given database.
func NewSessionLogger(db *DB) *SessionLogger {
	return &SessionLogger{db: db}
}

// Record upserts the session row on first use and appends the turn.
func (l *SessionLogger) Record(ctx context.Context, sessionID string, rec interview.TurnRecord) error {
	key, err := uuid.Parse(sessionID)
	if err != nil {
		// Unrecognized session key: skip silently, the turn still succeeds.
		return nil
	}

	if err := l.db.AppendTurn(ctx, key, rec); err != nil {
		log.Printf("session log write failed for %s: %v", key, err)
	}
	return nil
}

// AppendTurn creates the session record if needed and appends one turn.
// The log is append-only; entries are never mutated or reordered.
func (db *DB) AppendTurn(ctx context.Context, sessionID uuid.UUID, rec interview.TurnRecord) error {
	snapshot, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx,
		`INSERT INTO interview_sessions (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`,
		sessionID,
	); err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO interview_turns (session_id, ts, step_index, user_text, ai_text, snapshot)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		sessionID, rec.Timestamp, rec.StepIndex, rec.UserText, rec.AIText, snapshot,
	); err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}

	return tx.Commit(ctx)
}

// ListTurns returns a session's turn records in append order.
func (db *DB) ListTurns(ctx context.Context, sessionID uuid.UUID) ([]interview.TurnRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT ts, step_index, user_text, ai_text, snapshot
		 FROM interview_turns WHERE session_id = $1 ORDER BY id`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	defer rows.Close()

	turns := []interview.TurnRecord{}
	for rows.Next() {
		var rec interview.TurnRecord
		var snapshot []byte
		if err := rows.Scan(&rec.Timestamp, &rec.StepIndex, &rec.UserText, &rec.AIText, &snapshot); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		if err := json.Unmarshal(snapshot, &rec.Snapshot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
		turns = append(turns, rec)
	}
	return turns, rows.Err()
}
