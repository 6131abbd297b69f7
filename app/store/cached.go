package store

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lcw/v2"
)

// Interface is what callers need from a preferences store, satisfied by Store and Cached.
type Interface interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Cached keeps recently read preferences in an LRU cache in front of the store.
// Misses are not cached, so an absent key is looked up again on every read.
type Cached struct {
	Interface
	cache lcw.LoadingCache[[]byte]
}

// NewCached wraps st with a cache holding up to maxKeys values.
func NewCached(st Interface, maxKeys int) (*Cached, error) {
	cache, err := lcw.NewLruCache(lcw.NewOpts[[]byte]().MaxKeys(maxKeys))
	if err != nil {
		return nil, fmt.Errorf("failed to make prefs cache: %w", err)
	}
	return &Cached{Interface: st, cache: cache}, nil
}

// Get serves key from the cache, loading it from the store on a miss.
func (c *Cached) Get(ctx context.Context, key string) ([]byte, error) {
	return c.cache.Get(key, func() ([]byte, error) {
		return c.Interface.Get(ctx, key) //nolint:wrapcheck // ErrNotFound has to reach the caller as is
	})
}

// Set writes through to the store and drops the cached copy.
func (c *Cached) Set(ctx context.Context, key string, value []byte) error {
	defer c.cache.Delete(key)
	return c.Interface.Set(ctx, key, value) //nolint:wrapcheck // store errors are already descriptive
}

// Delete removes key from the store and the cache.
func (c *Cached) Delete(ctx context.Context, key string) error {
	defer c.cache.Delete(key)
	return c.Interface.Delete(ctx, key) //nolint:wrapcheck // keeps ErrNotFound comparable
}

// Close stops the cache and closes the store.
func (c *Cached) Close() error {
	_ = c.cache.Close()
	return c.Interface.Close() //nolint:wrapcheck // store errors are already descriptive
}

// Stats reports cache hits and misses.
func (c *Cached) Stats() lcw.CacheStat {
	return c.cache.Stat()
}
