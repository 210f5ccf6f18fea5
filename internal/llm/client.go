package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// NoResponseMessage is returned when the model produces no usable choice.
const NoResponseMessage = "Sorry, I could not generate a response."

// Message is a single chat message in the conversation sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is an abstraction over chat-completion providers.
type Client interface {
	// ChatCompletion sends the messages and returns the assistant's reply.
	ChatCompletion(ctx context.Context, messages []Message) (string, error)
}

// StatusError reports a non-2xx response from the chat-completion service.
// It carries the upstream status code and raw body so the API layer can
// mirror them.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chat completion failed: HTTP %d", e.StatusCode)
}

// GroqClient implements Client for Groq's OpenAI-compatible endpoint.
type GroqClient struct {
	config     *Config
	apiKey     string
	httpClient *http.Client
}

// NewGroqClient creates a Groq chat-completion client.
func NewGroqClient(config *Config, apiKey string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}
	config = config.withDefaults()

	return &GroqClient{
		config: config,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends a single chat-completion request. Non-2xx responses
// are returned as a StatusError; no retry is performed here, retry policy
// belongs to the caller.
func (c *GroqClient) ChatCompletion(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.config.Model,
		Messages:    messages,
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("failed to parse chat response: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return NoResponseMessage, nil
	}

	return completion.Choices[0].Message.Content, nil
}
