package client

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/watergrid/meter-analytics-api/internal/config"
	"github.com/watergrid/meter-analytics-api/internal/domain"
)

// ReferenceKey identifies one dropdown reference list
type ReferenceKey string

const (
	KeyYears      ReferenceKey = "years"
	KeyDivisions  ReferenceKey = "divisions"
	KeyIndustries ReferenceKey = "industries"
	KeyMonths     ReferenceKey = "months"
)

// DimensionLister is the part of the API client the cache consumes
type DimensionLister interface {
	Years(ctx context.Context) ([]domain.DimensionOption, error)
	Divisions(ctx context.Context) ([]domain.DimensionOption, error)
	Industries(ctx context.Context) ([]domain.DimensionOption, error)
	Months(ctx context.Context) ([]domain.DimensionOption, error)
}

// entry is one cached reference list. ready is closed once the fetch has
// settled; until then concurrent callers for the key wait on it instead of
// issuing their own fetch.
type entry struct {
	ready      chan struct{}
	insertedAt time.Time

	options []domain.DimensionOption
	err     error
}

// ReferenceCache memoizes the reference lists per key. Entries expire a
// fixed window after insertion, checked at lookup time; there are no timer
// callbacks involved. A failed fetch is retried a bounded number of times
// and then settles on an empty list with the error kept alongside it, so
// callers can tell "truly empty" from "fetch failed".
type ReferenceCache struct {
	lister     DimensionLister
	ttl        time.Duration
	retries    int
	retryDelay time.Duration

	mu      sync.Mutex
	entries map[ReferenceKey]*entry

	// now is swappable for tests
	now func() time.Time
}

func NewReferenceCache(lister DimensionLister, cfg config.Client) *ReferenceCache {
	return &ReferenceCache{
		lister:     lister,
		ttl:        cfg.CacheTTL,
		retries:    cfg.FetchRetries,
		retryDelay: cfg.RetryDelay,
		entries:    make(map[ReferenceKey]*entry),
		now:        time.Now,
	}
}

// Get returns the reference list for key, fetching it at most once per
// expiry window no matter how many callers ask concurrently. The returned
// error is non-nil when the list is empty because the fetch failed.
func (c *ReferenceCache) Get(ctx context.Context, key ReferenceKey) ([]domain.DimensionOption, error) {
	c.mu.Lock()

	e, ok := c.entries[key]
	if !ok || c.expired(e) {
		e = &entry{
			ready:      make(chan struct{}),
			insertedAt: c.now(),
		}
		c.entries[key] = e
		c.mu.Unlock()

		c.fetch(ctx, key, e)
	} else {
		c.mu.Unlock()
	}

	select {
	case <-e.ready:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return e.options, e.err
}

// ClearCache drops every entry immediately. In-flight fetches still settle
// for the callers already waiting on them.
func (c *ReferenceCache) ClearCache() {
	c.mu.Lock()
	c.entries = make(map[ReferenceKey]*entry)
	c.mu.Unlock()
}

// expired is true once the fixed window since insertion has passed. The
// window does not slide on access.
func (c *ReferenceCache) expired(e *entry) bool {
	select {
	case <-e.ready:
		return c.now().Sub(e.insertedAt) >= c.ttl
	default:
		// still fetching, never expired
		return false
	}
}

func (c *ReferenceCache) fetch(ctx context.Context, key ReferenceKey, e *entry) {
	defer close(e.ready)

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				e.options = make([]domain.DimensionOption, 0)
				e.err = ctx.Err()
				return
			}
		}

		options, err := c.list(ctx, key)
		if err == nil {
			e.options = options
			return
		}
		lastErr = err
	}

	// settle on an empty list, keeping the failure visible to callers
	e.options = make([]domain.DimensionOption, 0)
	e.err = errors.Wrapf(lastErr, "fetching %s failed after %d attempts", key, c.retries+1)
}

func (c *ReferenceCache) list(ctx context.Context, key ReferenceKey) ([]domain.DimensionOption, error) {
	switch key {
	case KeyYears:
		return c.lister.Years(ctx)
	case KeyDivisions:
		return c.lister.Divisions(ctx)
	case KeyIndustries:
		return c.lister.Industries(ctx)
	case KeyMonths:
		return c.lister.Months(ctx)
	}
	return nil, errors.Errorf("unknown reference key: %s", key)
}
