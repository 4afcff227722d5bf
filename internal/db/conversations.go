package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-builder/internal/types"
)

// ErrConversationNotFound indicates the conversation id does not exist.
var ErrConversationNotFound = errors.New("conversation not found")

// CreateConversation creates a conversation with the default title.
func (db *DB) CreateConversation(ctx context.Context) (*types.Conversation, error) {
	var c types.Conversation
	err := db.pool.QueryRow(ctx,
		`INSERT INTO conversations (title) VALUES ($1)
		 RETURNING id, title, created_at`,
		types.DefaultConversationTitle,
	).Scan(&c.ID, &c.Title, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return &c, nil
}

// ListConversations returns all conversations, newest first.
func (db *DB) ListConversations(ctx context.Context) ([]types.Conversation, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, created_at FROM conversations ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	conversations := []types.Conversation{}
	for rows.Next() {
		var c types.Conversation
		if err := rows.Scan(&c.ID, &c.Title, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conversations = append(conversations, c)
	}
	return conversations, rows.Err()
}

// GetConversation fetches one conversation by id.
func (db *DB) GetConversation(ctx context.Context, id uuid.UUID) (*types.Conversation, error) {
	var c types.Conversation
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, created_at FROM conversations WHERE id = $1`, id,
	).Scan(&c.ID, &c.Title, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return &c, nil
}

// DeleteConversation deletes a conversation and, via cascade, its messages.
func (db *DB) DeleteConversation(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM conversations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConversationNotFound
	}
	return nil
}

// RenameConversation updates a conversation's title.
func (db *DB) RenameConversation(ctx context.Context, id uuid.UUID, title string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE conversations SET title = $1 WHERE id = $2`, title, id)
	if err != nil {
		return fmt.Errorf("failed to rename conversation: %w", err)
	}
	return nil
}

// AppendMessage appends one message to a conversation.
func (db *DB) AppendMessage(ctx context.Context, conversationID uuid.UUID, role, content, imageData string) (*types.Message, error) {
	var m types.Message
	var image *string
	if imageData != "" {
		image = &imageData
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO messages (conversation_id, role, content, image_data)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, conversation_id, role, content, COALESCE(image_data, ''), created_at`,
		conversationID, role, content, image,
	).Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.ImageData, &m.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return &m, nil
}

// ListMessages returns a conversation's messages in timestamp order.
func (db *DB) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]types.Message, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, conversation_id, role, content, COALESCE(image_data, ''), created_at
		 FROM messages WHERE conversation_id = $1 ORDER BY created_at, id`,
		conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []types.Message{}
	for rows.Next() {
		var m types.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.ImageData, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
