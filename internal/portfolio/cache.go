package portfolio

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is how long a fetched document is served without a refresh.
const DefaultCacheTTL = 5 * time.Minute

// State describes the cache lifecycle.
type State string

// Cache states.
const (
	StateEmpty State = "empty" // no document ever fetched
	StateFresh State = "fresh" // age since last successful fetch < TTL
	StateStale State = "stale" // age >= TTL, eligible for refresh
)

// refreshKey is the singleflight key; there is only one document per process.
const refreshKey = "portfolio"

// Cache holds the last successfully fetched portfolio document and serves it
// within a TTL window. A fetch failure serves the built-in fallback for that
// request only, without mutating the cache, so the next request retries.
//
// The document and timestamp are replaced wholesale on a successful refresh
// and never partially mutated; readers between refreshes see a consistent
// snapshot.
type Cache struct {
	loader Loader
	ttl    time.Duration
	logger *zap.Logger

	group singleflight.Group

	mu        sync.RWMutex
	doc       *Document
	fetchedAt time.Time
}

// NewCache creates a cache around the loader. A non-positive ttl falls back
// to DefaultCacheTTL.
func NewCache(loader Loader, ttl time.Duration, logger *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		loader: loader,
		ttl:    ttl,
		logger: logger,
	}
}

// State reports the current cache state.
func (c *Cache) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch {
	case c.doc == nil:
		return StateEmpty
	case time.Since(c.fetchedAt) < c.ttl:
		return StateFresh
	default:
		return StateStale
	}
}

// Snapshot returns the document to use for one request. A fresh cache is
// served without any network call. An empty or stale cache triggers a
// refresh; concurrent refreshes collapse into a single outstanding fetch,
// and a request arriving mid-refresh waits for that fetch rather than
// serving the stale value, so every waiter sees the same generation.
//
// On fetch failure the built-in fallback document is returned and the cache
// is left untouched. Snapshot never returns nil.
func (c *Cache) Snapshot(ctx context.Context) *Document {
	if doc, ok := c.fresh(); ok {
		return doc
	}

	v, err, _ := c.group.Do(refreshKey, func() (any, error) {
		// A waiter queued behind a completed refresh sees a fresh cache.
		if doc, ok := c.fresh(); ok {
			return doc, nil
		}
		return c.refresh(ctx)
	})
	if err != nil {
		c.logger.Warn("portfolio fetch failed, serving fallback", zap.Error(err))
		return Fallback()
	}

	return v.(*Document)
}

// fresh returns the cached document if it is within the TTL window.
func (c *Cache) fresh() (*Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.doc != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.doc, true
	}
	return nil, false
}

// refresh fetches the document and, on success, replaces the cache contents
// and timestamp atomically.
func (c *Cache) refresh(ctx context.Context) (*Document, error) {
	doc, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.doc = doc
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	c.logger.Info("portfolio document refreshed")
	return doc, nil
}
