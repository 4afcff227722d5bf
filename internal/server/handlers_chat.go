package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
)

// ChatRequest is one general chat message, optionally with an image.
type ChatRequest struct {
	Message        string  `json:"message"`
	Image          string  `json:"image,omitempty"` // base64, with or without a data: URL prefix
	ConversationID string  `json:"chat_id"`
	Temperature    float64 `json:"temperature,omitempty"`
}

// handleListConversations returns the sidebar list, newest first.
func (s *Server) handleListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := s.db.ListConversations(r.Context())
	if err != nil {
		log.Printf("Failed to list conversations: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list conversations")
		return
	}
	s.jsonResponse(w, http.StatusOK, conversations)
}

// handleCreateConversation creates an empty conversation.
func (s *Server) handleCreateConversation(w http.ResponseWriter, r *http.Request) {
	c, err := s.db.CreateConversation(r.Context())
	if err != nil {
		log.Printf("Failed to create conversation: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create conversation")
		return
	}
	s.jsonResponse(w, http.StatusCreated, c)
}

// handleDeleteConversation deletes a conversation and its messages.
func (s *Server) handleDeleteConversation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid conversation id")
		return
	}
	if err := s.db.DeleteConversation(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrConversationNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Conversation not found")
			return
		}
		log.Printf("Failed to delete conversation: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete conversation")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// handleListMessages returns a conversation's messages in order.
func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid conversation id")
		return
	}
	messages, err := s.db.ListMessages(r.Context(), id)
	if err != nil {
		log.Printf("Failed to list messages: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list messages")
		return
	}
	s.jsonResponse(w, http.StatusOK, messages)
}

// handleChat streams a model reply over SSE. Fragments are forwarded in
// arrival order; the cumulative text is persisted once the stream completes
// or terminates early.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ConversationID == "" {
		s.errorResponse(w, http.StatusBadRequest, "No chat ID provided")
		return
	}
	conversationID, err := uuid.Parse(req.ConversationID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid chat ID")
		return
	}
	if req.Temperature == 0 {
		req.Temperature = 0.7
	}

	image, imageFormat := decodeImage(req.Image)

	// The user message is saved before generation starts.
	if _, err := s.db.AppendMessage(r.Context(), conversationID, "user", req.Message, req.Image); err != nil {
		log.Printf("Failed to save user message: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save message")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	var full strings.Builder
	streamErr := s.llm.GenerateStream(r.Context(), llm.StreamRequest{
		Prompt:      req.Message,
		Image:       image,
		ImageFormat: imageFormat,
		Temperature: float32(req.Temperature),
	}, func(fragment string) error {
		full.WriteString(fragment)
		return sse.WriteData(map[string]string{"text": fragment})
	})

	// Persist whatever was generated, even after early termination. The
	// request context may already be canceled by a disconnecting client, so
	// persistence runs on its own context.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	title := ""
	g, gCtx := errgroup.WithContext(ctx)
	if full.Len() > 0 {
		g.Go(func() error {
			_, err := s.db.AppendMessage(gCtx, conversationID, "model", full.String(), "")
			return err
		})
	}
	g.Go(func() error {
		title = s.maybeTitle(gCtx, conversationID, req.Message)
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("Failed to persist chat turn: %v", err)
	}

	if streamErr != nil {
		log.Printf("Chat stream ended early: %v", streamErr)
		sse.WriteError("generation failed, please try again")
		return
	}

	if err := sse.WriteData(map[string]any{"done": true, "title": title}); err != nil {
		log.Printf("Failed to write done event: %v", err)
	}
}

// maybeTitle generates a short title on the conversation's first message.
// The rename is an explicit check against the default title, never a query
// side effect, so retries stay idempotent. Failures leave the title as-is.
func (s *Server) maybeTitle(ctx context.Context, conversationID uuid.UUID, message string) string {
	c, err := s.db.GetConversation(ctx, conversationID)
	if err != nil {
		return ""
	}
	if c.Title != types.DefaultConversationTitle {
		return c.Title
	}

	prompt, err := prompts.Render("chat.json", "title", map[string]string{"Message": message})
	if err != nil {
		return c.Title
	}
	title, err := s.llm.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return c.Title
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return c.Title
	}
	if err := s.db.RenameConversation(ctx, conversationID, title); err != nil {
		log.Printf("Failed to rename conversation: %v", err)
		return c.Title
	}
	return title
}

// decodeImage strips an optional data URL prefix and decodes base64 image
// bytes. Invalid images are dropped rather than failing the chat turn.
func decodeImage(b64 string) ([]byte, string) {
	if b64 == "" {
		return nil, ""
	}

	format := "png"
	if strings.HasPrefix(b64, "data:image/") {
		rest := strings.TrimPrefix(b64, "data:image/")
		if i := strings.Index(rest, ";"); i > 0 {
			format = rest[:i]
		}
	}
	if i := strings.Index(b64, "base64,"); i >= 0 {
		b64 = b64[i+len("base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		log.Printf("Dropping invalid chat image: %v", err)
		return nil, ""
	}
	return data, format
}
