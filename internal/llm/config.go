// Package llm provides the chat-completion client used to answer grounded
// questions. The endpoint speaks the OpenAI chat-completions wire format.
package llm

import "time"

// Defaults for the Groq chat-completion call. Model, temperature, and token
// budget are fixed configuration constants, not runtime inputs.
const (
	DefaultBaseURL     = "https://api.groq.com/openai/v1/chat/completions"
	DefaultModel       = "llama-3.1-8b-instant"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 500
	DefaultTimeout     = 30 * time.Second
)

// Config holds the chat-completion client configuration.
type Config struct {
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// DefaultConfig returns the default Groq configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		Timeout:     DefaultTimeout,
	}
}

// withDefaults fills zero-valued fields from the defaults.
func (c *Config) withDefaults() *Config {
	merged := *c
	if merged.BaseURL == "" {
		merged.BaseURL = DefaultBaseURL
	}
	if merged.Model == "" {
		merged.Model = DefaultModel
	}
	if merged.Temperature == 0 {
		merged.Temperature = DefaultTemperature
	}
	if merged.MaxTokens == 0 {
		merged.MaxTokens = DefaultMaxTokens
	}
	if merged.Timeout == 0 {
		merged.Timeout = DefaultTimeout
	}
	return &merged
}
