package backend

import (
	"context"
	"strings"
	"time"

	"github.com/puzpuzpuz/xsync"
	"golang.org/x/sync/singleflight"
)

// QueryKey identifies a cached read, e.g. {"admin", "dice", "event-params"}.
type QueryKey []string

func (k QueryKey) String() string {
	return strings.Join(k, "\x00")
}

// HasPrefix reports whether k starts with every element of prefix.
func (k QueryKey) HasPrefix(prefix QueryKey) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

type cacheEntry struct {
	key     QueryKey
	value   any
	fetched time.Time
}

// QueryCache deduplicates concurrent identical reads and keeps their result
// for a stale time. Writes go straight to the backend and only invalidate
// keys; they are not ordered against each other.
type QueryCache struct {
	staleTime time.Duration
	entries   *xsync.MapOf[string, cacheEntry]
	group     singleflight.Group
	now       func() time.Time
}

func NewQueryCache(staleTime time.Duration) *QueryCache {
	return &QueryCache{
		staleTime: staleTime,
		entries:   xsync.NewMapOf[cacheEntry](),
		now:       time.Now,
	}
}

// Query returns the cached value for key or runs fetch. Concurrent callers
// with the same key share one fetch. Errors are not cached.
func Query[T any](ctx context.Context, c *QueryCache, key QueryKey, fetch func(ctx context.Context) (T, error)) (T, error) {
	k := key.String()
	if e, ok := c.entries.Load(k); ok && c.now().Sub(e.fetched) < c.staleTime {
		return e.value.(T), nil
	}

	v, err, _ := c.group.Do(k, func() (any, error) {
		v, err := fetch(detached{ctx})
		if err != nil {
			return nil, err
		}
		c.entries.Store(k, cacheEntry{key: key, value: v, fetched: c.now()})
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// detached keeps the values of a request context, such as its access token,
// but not its cancellation. A shared fetch outlives the caller that started it.
type detached struct {
	parent context.Context
}

func (detached) Deadline() (time.Time, bool) { return time.Time{}, false }
func (detached) Done() <-chan struct{}       { return nil }
func (detached) Err() error                  { return nil }

func (d detached) Value(key any) any {
	return d.parent.Value(key)
}

// Invalidate drops every entry whose key starts with prefix.
func (c *QueryCache) Invalidate(prefix QueryKey) {
	c.entries.Range(func(k string, e cacheEntry) bool {
		if e.key.HasPrefix(prefix) {
			c.entries.Delete(k)
		}
		return true
	})
}
