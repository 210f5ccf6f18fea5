// Package types defines the chat API request and response types.
package types

import "github.com/go-playground/validator/v10"

// Turn is a single entry of the conversation transcript.
type Turn struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
	// Message is the legacy field name some widget versions send instead
	// of content.
	Message string `json:"message,omitempty"`
}

// Text returns the turn's content, falling back to the legacy message field.
func (t Turn) Text() string {
	if t.Content != "" {
		return t.Content
	}
	return t.Message
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message             string `json:"message" validate:"required"`
	ConversationHistory []Turn `json:"conversationHistory,omitempty"`
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ChatResponse is the success body of POST /api/chat. Contexts lists the
// source labels of the sections actually used for grounding, in ranked
// order; it is empty, not null, when no section matched.
type ChatResponse struct {
	Message  string   `json:"message"`
	Contexts []string `json:"contexts"`
}
