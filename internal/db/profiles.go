package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-builder/internal/types"
)

// ErrProfileNotFound indicates the profile id does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// SaveProfile stores a submitted profile. Profiles are written once and
// never updated.
func (db *DB) SaveProfile(ctx context.Context, fields map[string]string, sessionID, uploadID string) (*types.SubmittedProfile, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile fields: %w", err)
	}

	p := &types.SubmittedProfile{Fields: fields, SessionID: sessionID, UploadID: uploadID}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO submitted_profiles (fields, session_id, upload_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, submitted_at`,
		payload, sessionID, uploadID,
	).Scan(&p.ID, &p.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return p, nil
}

// GetProfile fetches a submitted profile by id.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*types.SubmittedProfile, error) {
	var p types.SubmittedProfile
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, fields, session_id, upload_id, submitted_at
		 FROM submitted_profiles WHERE id = $1`, id,
	).Scan(&p.ID, &payload, &p.SessionID, &p.UploadID, &p.SubmittedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if err := json.Unmarshal(payload, &p.Fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile fields: %w", err)
	}
	return &p, nil
}
