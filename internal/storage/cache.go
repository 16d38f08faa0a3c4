package storage

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CookieClicker_Go/internal/metrics"
)

// Cached is a read-through, write-through LRU in front of another adapter.
// Only found keys are cached; a miss always reaches the backend.
type Cached struct {
	next Adapter
	lru  *expirable.LRU[string, string]
}

// NewCached creates a cache holding at most size entries for ttl each.
// A zero ttl disables expiry.
func NewCached(next Adapter, size int, ttl time.Duration) *Cached {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cached{
		next: next,
		lru:  expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (c *Cached) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok := c.lru.Get(key); ok {
		metrics.CacheHits.Inc()
		return v, true, nil
	}
	metrics.CacheMisses.Inc()

	v, ok, err := c.next.Get(ctx, key)
	if err != nil || !ok {
		return v, ok, err
	}
	c.lru.Add(key, v)
	return v, true, nil
}

func (c *Cached) Set(ctx context.Context, key, value string) error {
	if err := c.next.Set(ctx, key, value); err != nil {
		// the backend may or may not hold the new value
		c.lru.Remove(key)
		return err
	}
	c.lru.Add(key, value)
	return nil
}

func (c *Cached) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	var missing []string
	for _, k := range keys {
		if v, ok := c.lru.Get(k); ok {
			metrics.CacheHits.Inc()
			out[k] = v
			continue
		}
		metrics.CacheMisses.Inc()
		missing = append(missing, k)
	}
	if len(missing) == 0 {
		return out, nil
	}

	fetched, err := c.next.GetMany(ctx, missing)
	if err != nil {
		return nil, err
	}
	for k, v := range fetched {
		c.lru.Add(k, v)
		out[k] = v
	}
	return out, nil
}

func (c *Cached) SetMany(ctx context.Context, values map[string]string) error {
	if err := c.next.SetMany(ctx, values); err != nil {
		for k := range values {
			c.lru.Remove(k)
		}
		return err
	}
	for k, v := range values {
		c.lru.Add(k, v)
	}
	return nil
}

func (c *Cached) Remove(ctx context.Context, key string) error {
	c.lru.Remove(key)
	return c.next.Remove(ctx, key)
}

// Ping forwards to the wrapped adapter
func (c *Cached) Ping(ctx context.Context) error {
	return Ping(ctx, c.next)
}

// Purge drops every cached entry
func (c *Cached) Purge() {
	c.lru.Purge()
}
