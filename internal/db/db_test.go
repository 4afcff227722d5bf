package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/interview"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL (falling
// back to DATABASE_URL) and ensures the schema. Tests are skipped when no
// database is configured or -short is set.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping test that requires database")
	}
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	database, err := Connect(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(database.Close)
	require.NoError(t, database.EnsureSchema(context.Background()))
	return database
}

func TestSessionLogger_MalformedKeyIsSilentNoOp(t *testing.T) {
	// A malformed session key must never reach the database, so a nil DB is
	// safe here.
	logger := NewSessionLogger(nil)
	err := logger.Record(context.Background(), "not-a-uuid", interview.TurnRecord{})
	assert.NoError(t, err)
}

func TestConversationLifecycle(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	c, err := database.CreateConversation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New Chat", c.Title)

	_, err = database.AppendMessage(ctx, c.ID, "user", "hello", "")
	require.NoError(t, err)
	_, err = database.AppendMessage(ctx, c.ID, "model", "hi there", "")
	require.NoError(t, err)

	messages, err := database.ListMessages(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0].Role)
	assert.Equal(t, "model", messages[1].Role)

	require.NoError(t, database.RenameConversation(ctx, c.ID, "Cover letter help"))
	got, err := database.GetConversation(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cover letter help", got.Title)

	require.NoError(t, database.DeleteConversation(ctx, c.ID))
	_, err = database.GetConversation(ctx, c.ID)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestAppendTurn_UpsertsSessionAndPreservesOrder(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	sessionID := uuid.New()

	for i := 0; i < 3; i++ {
		err := database.AppendTurn(ctx, sessionID, interview.TurnRecord{
			Timestamp: time.Now().UTC(),
			StepIndex: i,
			UserText:  "answer",
			AIText:    "question",
			Snapshot:  map[string]string{"full_name": "Jane Doe"},
		})
		require.NoError(t, err)
	}

	turns, err := database.ListTurns(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	for i, rec := range turns {
		assert.Equal(t, i, rec.StepIndex)
		assert.Equal(t, "Jane Doe", rec.Snapshot["full_name"])
	}
}

func TestProfileRoundTrip(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	fields := map[string]string{
		"full_name":        "Jane Doe",
		"email":            "jane@example.com",
		"phone":            "555-123-4567",
		"experience_level": "Senior",
		"job_title":        "Backend Engineer",
		"skills":           "Go, SQL",
		"summary":          "Engineer.",
	}
	saved, err := database.SaveProfile(ctx, fields, uuid.New().String(), "")
	require.NoError(t, err)

	got, err := database.GetProfile(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, fields, got.Fields)
	assert.Equal(t, saved.SessionID, got.SessionID)
}

func TestGetProfile_NotFound(t *testing.T) {
	database := setupTestDB(t)
	_, err := database.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
