package portfolio

import (
	"context"
	"time"

	"github.com/sarojd/portfolio-chatbot/internal/fetch"
)

// Loader produces a portfolio document, typically from a remote source.
type Loader interface {
	Load(ctx context.Context) (*Document, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) (*Document, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context) (*Document, error) {
	return f(ctx)
}

// HTTPLoader fetches the portfolio document as JSON over HTTP.
type HTTPLoader struct {
	url  string
	opts *fetch.Options
}

// NewHTTPLoader creates a loader for the given document URL. A non-positive
// timeout falls back to the fetch default.
func NewHTTPLoader(url string, timeout time.Duration) *HTTPLoader {
	opts := fetch.DefaultOptions()
	if timeout > 0 {
		opts.Timeout = timeout
	}
	return &HTTPLoader{url: url, opts: opts}
}

// Load fetches and decodes the portfolio document.
func (l *HTTPLoader) Load(ctx context.Context) (*Document, error) {
	var doc Document
	if err := fetch.JSON(ctx, l.url, l.opts, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
