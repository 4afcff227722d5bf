// Package types provides shared request/response types for the resume
// builder API.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SubmitProfileRequest is the final submission of a completed profile.
// Submission performs its own authoritative validation pass, independent of
// the interview engine's per-turn checks.
type SubmitProfileRequest struct {
	FullName        string `json:"full_name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	ExperienceLevel string `json:"experience_level" validate:"required"`
	JobTitle        string `json:"job_title" validate:"required"`
	Skills          string `json:"skills" validate:"required"`
	Summary         string `json:"summary" validate:"required"`

	// Linkage identifiers, both optional.
	SessionID string `json:"session_id,omitempty"`
	UploadID  string `json:"upload_id,omitempty"`
}

var validate = validator.New()

// Validate runs the struct tags and returns the raw validator error.
func (r *SubmitProfileRequest) Validate() error {
	return validate.Struct(r)
}

// MissingFields returns the JSON names of mandatory fields that are absent,
// in declaration order. Empty when the request is complete.
func (r *SubmitProfileRequest) MissingFields() []string {
	var missing []string
	err := validate.Struct(r)
	if err == nil {
		return missing
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"request"}
	}
	names := map[string]string{
		"FullName":        "full_name",
		"Email":           "email",
		"Phone":           "phone",
		"ExperienceLevel": "experience_level",
		"JobTitle":        "job_title",
		"Skills":          "skills",
		"Summary":         "summary",
	}
	for _, fe := range verrs {
		if name, ok := names[fe.Field()]; ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Fields returns the profile as the field map used by the interview draft.
func (r *SubmitProfileRequest) Fields() map[string]string {
	return map[string]string{
		"full_name":        r.FullName,
		"email":            r.Email,
		"phone":            r.Phone,
		"experience_level": r.ExperienceLevel,
		"job_title":        r.JobTitle,
		"skills":           r.Skills,
		"summary":          r.Summary,
	}
}

// SubmittedProfile is a stored, immutable profile submission.
type SubmittedProfile struct {
	ID          uuid.UUID         `json:"id"`
	Fields      map[string]string `json:"fields"`
	SessionID   string            `json:"session_id,omitempty"`
	UploadID    string            `json:"upload_id,omitempty"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// Conversation is a general chat conversation (sidebar entry).
type Conversation struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultConversationTitle is the title a conversation carries until its
// first message produces a generated one.
const DefaultConversationTitle = "New Chat"

// Message is one chat message within a conversation.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Role           string    `json:"role"` // "user" or "model"
	Content        string    `json:"content"`
	ImageData      string    `json:"image,omitempty"` // base64, user messages only
	Timestamp      time.Time `json:"timestamp"`
}
