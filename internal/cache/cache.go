// Package cache implements the query cache layer between UI-style callers
// and the persistent store service. Reads consult a keyed in-memory cache
// with staleness and garbage-collection windows; mutations follow a
// four-phase optimistic protocol: snapshot, predict, commit, then
// reconcile on success or roll back verbatim on failure.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// Store is what the cache needs from the persistent store service.
type Store interface {
	GetAll(ctx context.Context) ([]*types.Recipe, error)
	GetByID(ctx context.Context, id string) (*types.Recipe, error)
	GetFavorites(ctx context.Context) ([]*types.Recipe, error)
	GetPopular(ctx context.Context, limit int) ([]*types.Recipe, error)
	GetRecentlyCooked(ctx context.Context, limit int) ([]*types.Recipe, error)
	GetByCategory(ctx context.Context, category types.Category) ([]*types.Recipe, error)
	Search(ctx context.Context, query string) ([]*types.Recipe, error)
	GetStats(ctx context.Context) (*types.Stats, error)

	Add(ctx context.Context, draft types.RecipeDraft) (*types.Recipe, error)
	Update(ctx context.Context, id string, patch types.RecipePatch) (*types.Recipe, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	IncrementCookCount(ctx context.Context, id string) (*types.Recipe, error)
	ImportReplace(ctx context.Context, recipes []*types.Recipe) error
	ImportMerge(ctx context.Context, recipes []*types.Recipe) error
	Clear(ctx context.Context) error
}

// Options tune cache behavior. Zero values fall back to the defaults.
type Options struct {
	GCTime         time.Duration // unused-entry eviction window
	MaxRetries     int           // read retries after the first attempt
	RetryBaseDelay time.Duration // first retry delay, doubled per attempt
	RetryMaxDelay  time.Duration // retry delay cap
}

// DefaultOptions mirror the original client configuration.
func DefaultOptions() Options {
	return Options{
		GCTime:         10 * time.Minute,
		MaxRetries:     3,
		RetryBaseDelay: time.Second,
		RetryMaxDelay:  5 * time.Second,
	}
}

// entry is one cached query result.
type entry struct {
	value      any
	fetchedAt  time.Time
	lastAccess time.Time
	staleTime  time.Duration
	invalid    bool
}

// inflight tracks an outstanding fetch so a mutation can cancel it before
// applying an optimistic write to the same key.
type inflight struct {
	cancel context.CancelFunc
}

// Client is the query cache. Safe for concurrent use; per-key ordering is
// enforced by canceling in-flight reads before optimistic writes.
type Client struct {
	mu       sync.Mutex
	store    Store
	opts     Options
	entries  map[Key]*entry
	inflight map[Key]*inflight

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a Client over the given store with default options.
func New(store Store) *Client {
	return NewWithOptions(store, DefaultOptions())
}

// NewWithOptions creates a Client with explicit options.
func NewWithOptions(store Store, opts Options) *Client {
	def := DefaultOptions()
	if opts.GCTime <= 0 {
		opts.GCTime = def.GCTime
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = def.MaxRetries
	}
	if opts.RetryBaseDelay <= 0 {
		opts.RetryBaseDelay = def.RetryBaseDelay
	}
	if opts.RetryMaxDelay <= 0 {
		opts.RetryMaxDelay = def.RetryMaxDelay
	}
	return &Client{
		store:    store,
		opts:     opts,
		entries:  make(map[Key]*entry),
		inflight: make(map[Key]*inflight),
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

type fetchFunc func(ctx context.Context) (any, error)

// fetch returns the cached value when fresh, otherwise fetches through the
// store with the retry policy and caches the result. A fetch superseded by
// an optimistic write never clobbers the prediction.
func (c *Client) fetch(ctx context.Context, key Key, stale time.Duration, fn fetchFunc) (any, error) {
	c.mu.Lock()
	c.sweepLocked()
	if e, ok := c.entries[key]; ok && !e.invalid && c.now().Sub(e.fetchedAt) < e.staleTime {
		e.lastAccess = c.now()
		v := e.value
		c.mu.Unlock()
		return v, nil
	}

	fctx, cancel := context.WithCancel(ctx)
	token := &inflight{cancel: cancel}
	c.inflight[key] = token
	c.mu.Unlock()

	v, err := c.fetchWithRetry(fctx, fn)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	owned := c.inflight[key] == token
	if owned {
		delete(c.inflight, key)
	}

	// Superseded by an optimistic write: the prediction wins.
	if !owned || (err != nil && fctx.Err() != nil && ctx.Err() == nil) {
		if e, ok := c.entries[key]; ok {
			e.lastAccess = c.now()
			return e.value, nil
		}
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	if err != nil {
		return nil, err
	}

	now := c.now()
	c.entries[key] = &entry{
		value:      v,
		fetchedAt:  now,
		lastAccess: now,
		staleTime:  stale,
	}
	return v, nil
}

// sweepLocked evicts entries unused for longer than the gc window.
func (c *Client) sweepLocked() {
	cutoff := c.now().Add(-c.opts.GCTime)
	for key, e := range c.entries {
		if _, busy := c.inflight[key]; busy {
			continue
		}
		if e.lastAccess.Before(cutoff) {
			delete(c.entries, key)
		}
	}
}

// cancelInflightLocked aborts an outstanding read for key so a stale fetch
// cannot overwrite a newer optimistic prediction.
func (c *Client) cancelInflightLocked(key Key) {
	if f, ok := c.inflight[key]; ok {
		f.cancel()
		delete(c.inflight, key)
	}
}

// invalidateLocked marks a key for refetch on next read.
func (c *Client) invalidateLocked(key Key) {
	if e, ok := c.entries[key]; ok {
		e.invalid = true
	}
}

// invalidatePrefixLocked marks every dynamic key under prefix.
func (c *Client) invalidatePrefixLocked(prefix string) {
	for key, e := range c.entries {
		if len(key) >= len(prefix) && string(key[:len(prefix)]) == prefix {
			e.invalid = true
		}
	}
}

// invalidateAllLocked marks every entry for refetch.
func (c *Client) invalidateAllLocked() {
	for _, e := range c.entries {
		e.invalid = true
	}
}

// setLocked writes an authoritative value for key.
func (c *Client) setLocked(key Key, stale time.Duration, v any) {
	now := c.now()
	c.entries[key] = &entry{
		value:      v,
		fetchedAt:  now,
		lastAccess: now,
		staleTime:  stale,
	}
}

// Reads. Each consults the cache first; a miss or stale entry fetches
// through the store service.

// Recipes returns the full collection, updatedAt descending.
func (c *Client) Recipes(ctx context.Context) ([]*types.Recipe, error) {
	v, err := c.fetch(ctx, KeyRecipes, staleRecipes, func(ctx context.Context) (any, error) {
		return c.store.GetAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*types.Recipe), nil
}

// Recipe returns one recipe by id.
func (c *Client) Recipe(ctx context.Context, id string) (*types.Recipe, error) {
	v, err := c.fetch(ctx, RecipeKey(id), staleRecipe, func(ctx context.Context) (any, error) {
		return c.store.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.Recipe), nil
}

// Favorites returns the favorited recipes.
func (c *Client) Favorites(ctx context.Context) ([]*types.Recipe, error) {
	v, err := c.fetch(ctx, KeyFavorites, staleFavorites, func(ctx context.Context) (any, error) {
		return c.store.GetFavorites(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*types.Recipe), nil
}

// Popular returns recipes by cook count.
func (c *Client) Popular(ctx context.Context, limit int) ([]*types.Recipe, error) {
	v, err := c.fetch(ctx, PopularKey(limit), stalePopular, func(ctx context.Context) (any, error) {
		return c.store.GetPopular(ctx, limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*types.Recipe), nil
}

// RecentlyCooked returns recipes by last cooked time.
func (c *Client) RecentlyCooked(ctx context.Context, limit int) ([]*types.Recipe, error) {
	v, err := c.fetch(ctx, RecentKey(limit), staleRecent, func(ctx context.Context) (any, error) {
		return c.store.GetRecentlyCooked(ctx, limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*types.Recipe), nil
}

// ByCategory returns the recipes in a category.
func (c *Client) ByCategory(ctx context.Context, category types.Category) ([]*types.Recipe, error) {
	v, err := c.fetch(ctx, CategoryKey(category), staleCategory, func(ctx context.Context) (any, error) {
		return c.store.GetByCategory(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*types.Recipe), nil
}

// Search returns recipes matching the free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]*types.Recipe, error) {
	v, err := c.fetch(ctx, SearchKey(query), staleSearch, func(ctx context.Context) (any, error) {
		return c.store.Search(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*types.Recipe), nil
}

// Stats returns collection-wide statistics.
func (c *Client) Stats(ctx context.Context) (*types.Stats, error) {
	v, err := c.fetch(ctx, KeyStats, staleStats, func(ctx context.Context) (any, error) {
		return c.store.GetStats(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.Stats), nil
}

// Invalidate marks a key for refetch on next read.
func (c *Client) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked(key)
}

// InvalidateAll marks every entry for refetch.
func (c *Client) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateAllLocked()
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
