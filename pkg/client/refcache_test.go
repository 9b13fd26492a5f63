package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/watergrid/meter-analytics-api/internal/config"
	"github.com/watergrid/meter-analytics-api/internal/domain"
)

// fakeLister counts fetches per key and serves canned results
type fakeLister struct {
	mu    sync.Mutex
	calls map[ReferenceKey]int

	options []domain.DimensionOption
	err     error

	// block, when set, holds every fetch until released
	block chan struct{}
}

func newFakeLister(options []domain.DimensionOption, err error) *fakeLister {
	return &fakeLister{
		calls:   make(map[ReferenceKey]int),
		options: options,
		err:     err,
	}
}

func (f *fakeLister) serve(key ReferenceKey) ([]domain.DimensionOption, error) {
	f.mu.Lock()
	f.calls[key]++
	f.mu.Unlock()

	if f.block != nil {
		<-f.block
	}

	return f.options, f.err
}

func (f *fakeLister) callCount(key ReferenceKey) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeLister) Years(ctx context.Context) ([]domain.DimensionOption, error) {
	return f.serve(KeyYears)
}

func (f *fakeLister) Divisions(ctx context.Context) ([]domain.DimensionOption, error) {
	return f.serve(KeyDivisions)
}

func (f *fakeLister) Industries(ctx context.Context) ([]domain.DimensionOption, error) {
	return f.serve(KeyIndustries)
}

func (f *fakeLister) Months(ctx context.Context) ([]domain.DimensionOption, error) {
	return f.serve(KeyMonths)
}

func testCacheConfig() config.Client {
	return config.Client{
		CacheTTL:     5 * time.Minute,
		FetchRetries: 2,
		RetryDelay:   0,
	}
}

func TestReferenceCache_FetchesOncePerWindow(t *testing.T) {
	years := []domain.DimensionOption{{ID: "2023-2024", Name: "2023-2024"}}
	lister := newFakeLister(years, nil)
	cache := NewReferenceCache(lister, testCacheConfig())

	ctx := context.Background()

	for i := 0; i < 5; i++ {
		options, err := cache.Get(ctx, KeyYears)
		assert.NoError(t, err)
		assert.Equal(t, years, options)
	}

	assert.Equal(t, 1, lister.callCount(KeyYears))
}

func TestReferenceCache_KeysAreIndependent(t *testing.T) {
	lister := newFakeLister([]domain.DimensionOption{{ID: "x", Name: "x"}}, nil)
	cache := NewReferenceCache(lister, testCacheConfig())

	ctx := context.Background()

	_, err := cache.Get(ctx, KeyYears)
	assert.NoError(t, err)
	_, err = cache.Get(ctx, KeyDivisions)
	assert.NoError(t, err)

	assert.Equal(t, 1, lister.callCount(KeyYears))
	assert.Equal(t, 1, lister.callCount(KeyDivisions))
}

func TestReferenceCache_ExpiryTriggersRefetch(t *testing.T) {
	lister := newFakeLister([]domain.DimensionOption{{ID: "x", Name: "x"}}, nil)
	cache := NewReferenceCache(lister, testCacheConfig())

	current := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	ctx := context.Background()

	_, err := cache.Get(ctx, KeyYears)
	assert.NoError(t, err)

	// still inside the window, no refetch
	current = current.Add(4 * time.Minute)
	_, err = cache.Get(ctx, KeyYears)
	assert.NoError(t, err)
	assert.Equal(t, 1, lister.callCount(KeyYears))

	// past the window now
	current = current.Add(2 * time.Minute)
	_, err = cache.Get(ctx, KeyYears)
	assert.NoError(t, err)
	assert.Equal(t, 2, lister.callCount(KeyYears))
}

func TestReferenceCache_WindowDoesNotSlide(t *testing.T) {
	lister := newFakeLister([]domain.DimensionOption{{ID: "x", Name: "x"}}, nil)
	cache := NewReferenceCache(lister, testCacheConfig())

	current := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	ctx := context.Background()

	_, _ = cache.Get(ctx, KeyYears)

	// repeated access close to the edge must not extend the window
	for i := 0; i < 4; i++ {
		current = current.Add(time.Minute)
		_, _ = cache.Get(ctx, KeyYears)
	}
	assert.Equal(t, 1, lister.callCount(KeyYears))

	current = current.Add(time.Minute)
	_, _ = cache.Get(ctx, KeyYears)
	assert.Equal(t, 2, lister.callCount(KeyYears))
}

func TestReferenceCache_FailureSettlesOnEmptyListWithError(t *testing.T) {
	lister := newFakeLister(nil, assert.AnError)
	cache := NewReferenceCache(lister, testCacheConfig())

	options, err := cache.Get(context.Background(), KeyIndustries)

	// every retry was spent
	assert.Equal(t, 3, lister.callCount(KeyIndustries))

	// empty but non-nil, with the failure kept visible
	assert.NotNil(t, options)
	assert.Empty(t, options)
	assert.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)

	// the failed entry is cached too; no refetch inside the window
	_, err = cache.Get(context.Background(), KeyIndustries)
	assert.Error(t, err)
	assert.Equal(t, 3, lister.callCount(KeyIndustries))
}

func TestReferenceCache_ClearCacheForcesRefetch(t *testing.T) {
	lister := newFakeLister([]domain.DimensionOption{{ID: "x", Name: "x"}}, nil)
	cache := NewReferenceCache(lister, testCacheConfig())

	ctx := context.Background()

	_, _ = cache.Get(ctx, KeyMonths)
	assert.Equal(t, 1, lister.callCount(KeyMonths))

	cache.ClearCache()

	_, _ = cache.Get(ctx, KeyMonths)
	assert.Equal(t, 2, lister.callCount(KeyMonths))
}

func TestReferenceCache_ConcurrentCallersShareOneFetch(t *testing.T) {
	lister := newFakeLister([]domain.DimensionOption{{ID: "x", Name: "x"}}, nil)
	lister.block = make(chan struct{})
	cache := NewReferenceCache(lister, testCacheConfig())

	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]error, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = cache.Get(ctx, KeyDivisions)
		}(i)
	}

	// let the goroutines pile up on the shared entry before releasing
	time.Sleep(50 * time.Millisecond)
	close(lister.block)
	wg.Wait()

	for _, err := range results {
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, lister.callCount(KeyDivisions))
}
