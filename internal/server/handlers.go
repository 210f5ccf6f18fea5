package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sarojd/portfolio-chatbot/internal/history"
	"github.com/sarojd/portfolio-chatbot/internal/llm"
	"github.com/sarojd/portfolio-chatbot/internal/portfolio"
	"github.com/sarojd/portfolio-chatbot/internal/prompt"
	"github.com/sarojd/portfolio-chatbot/internal/retrieval"
	"github.com/sarojd/portfolio-chatbot/internal/types"
)

// maxErrorDetailLength bounds the upstream diagnostic echoed to the caller.
const maxErrorDetailLength = 200

// retryAfterSeconds is the hint returned with a mirrored rate-limit error.
const retryAfterSeconds = 60

// handleChat answers one chat message: retrieve grounding sections from the
// cached portfolio, assemble the prompt, call the chat-completion service,
// and return the reply with the section labels that grounded it.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Message is required")
		return
	}

	if s.llmClient == nil {
		err := &ErrConfiguration{Message: "Groq API key not configured. Please set GROQ_API_KEY environment variable."}
		s.errorResponse(w, HTTPStatus(err), err.Message)
		return
	}

	// A fetch failure inside Snapshot falls back to the built-in document;
	// corpus unavailability is never surfaced to the chat caller.
	doc := s.cache.Snapshot(r.Context())
	sections := portfolio.BuildSections(doc)
	ranked := retrieval.Rank(req.Message, sections, retrieval.DefaultTopK)

	systemPrompt := prompt.Build(s.persona, req.Message, ranked)

	windowed := history.Window(req.ConversationHistory, history.DefaultMaxTurns)
	messages := make([]llm.Message, 0, len(windowed)+2)
	messages = append(messages, llm.Message{Role: "system", Content: systemPrompt})
	for _, turn := range windowed {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: req.Message})

	reply, err := s.llmClient.ChatCompletion(r.Context(), messages)
	if err != nil {
		s.chatErrorResponse(w, err)
		return
	}

	contexts := make([]string, 0, len(ranked))
	for _, section := range ranked {
		contexts = append(contexts, section.Source)
	}

	s.jsonResponse(w, http.StatusOK, types.ChatResponse{
		Message:  reply,
		Contexts: contexts,
	})
}

// chatErrorResponse maps a chat-completion failure onto the API. Upstream
// non-2xx statuses are mirrored: a rate limit carries a retry hint, anything
// else a truncated diagnostic. Transport-level failures become a generic 500.
func (s *Server) chatErrorResponse(w http.ResponseWriter, err error) {
	var statusErr *llm.StatusError
	if !errors.As(err, &statusErr) {
		s.logger.Error("chat completion failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.logger.Warn("chat service error",
		zap.Int("status", statusErr.StatusCode),
		zap.String("body", truncate(statusErr.Body, maxErrorDetailLength)),
	)

	if statusErr.StatusCode == http.StatusTooManyRequests {
		s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
			"error":      "Rate limit exceeded. Please try again in a moment.",
			"retryAfter": retryAfterSeconds,
		})
		return
	}

	s.jsonResponse(w, statusErr.StatusCode, map[string]any{
		"error":   "Failed to get response from AI service",
		"details": truncate(statusErr.Body, maxErrorDetailLength),
	})
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
