// Package config provides environment-backed configuration for the server.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort             = 3000
	DefaultPortfolioDataURL = "https://raw.githubusercontent.com/SarojDebnath/portfolio/main/data.json"
	DefaultCacheTTL         = 5 * time.Minute
	DefaultFetchTimeout     = 10 * time.Second
)

// Config holds the server configuration.
type Config struct {
	// Port is the HTTP listen port (PORT).
	Port int
	// GroqAPIKey is the downstream chat-completion credential
	// (GROQ_API_KEY). May be empty; the chat endpoint then reports a
	// configuration error per request rather than refusing to start.
	GroqAPIKey string
	// GroqAPIURL overrides the chat-completion endpoint (GROQ_API_URL).
	// Empty means the client default.
	GroqAPIURL string
	// PortfolioDataURL is the remote corpus document (PORTFOLIO_DATA_URL).
	PortfolioDataURL string
	// CacheTTL is how long a fetched corpus stays fresh
	// (PORTFOLIO_CACHE_TTL, Go duration syntax).
	CacheTTL time.Duration
	// FetchTimeout bounds the corpus fetch (FETCH_TIMEOUT, Go duration
	// syntax).
	FetchTimeout time.Duration
}

// FromEnv loads configuration from environment variables, applying defaults
// for anything unset. Returns an error only for values that are present but
// unparseable.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:             DefaultPort,
		GroqAPIKey:       os.Getenv("GROQ_API_KEY"),
		GroqAPIURL:       os.Getenv("GROQ_API_URL"),
		PortfolioDataURL: DefaultPortfolioDataURL,
		CacheTTL:         DefaultCacheTTL,
		FetchTimeout:     DefaultFetchTimeout,
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", raw, err)
		}
		cfg.Port = port
	}

	if raw := os.Getenv("PORTFOLIO_DATA_URL"); raw != "" {
		cfg.PortfolioDataURL = raw
	}

	if raw := os.Getenv("PORTFOLIO_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORTFOLIO_CACHE_TTL %q: %w", raw, err)
		}
		cfg.CacheTTL = ttl
	}

	if raw := os.Getenv("FETCH_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT %q: %w", raw, err)
		}
		cfg.FetchTimeout = timeout
	}

	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("config error: cache TTL must be positive")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("config error: fetch timeout must be positive")
	}

	parsed, err := url.Parse(c.PortfolioDataURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config error: invalid portfolio data URL %q", c.PortfolioDataURL)
	}

	return nil
}
