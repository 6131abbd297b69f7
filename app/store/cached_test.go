package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("caches on first read, returns cached on second", func(t *testing.T) {
		cached, err := NewCached(newTestStore(t), 100)
		require.NoError(t, err)

		require.NoError(t, cached.Set(ctx, "prefs/theme", []byte("dark")))

		val, err := cached.Get(ctx, "prefs/theme")
		require.NoError(t, err)
		assert.Equal(t, []byte("dark"), val)
		stats := cached.Stats()
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(0), stats.Hits)

		val, err = cached.Get(ctx, "prefs/theme")
		require.NoError(t, err)
		assert.Equal(t, []byte("dark"), val)
		stats = cached.Stats()
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(1), stats.Hits)
	})

	t.Run("invalidates cache on Set", func(t *testing.T) {
		cached, err := NewCached(newTestStore(t), 100)
		require.NoError(t, err)

		require.NoError(t, cached.Set(ctx, "prefs/theme", []byte("dark")))
		_, err = cached.Get(ctx, "prefs/theme")
		require.NoError(t, err)

		require.NoError(t, cached.Set(ctx, "prefs/theme", []byte("light")))
		val, err := cached.Get(ctx, "prefs/theme")
		require.NoError(t, err)
		assert.Equal(t, []byte("light"), val)
		assert.Equal(t, int64(2), cached.Stats().Misses)
	})

	t.Run("invalidates cache on Delete", func(t *testing.T) {
		cached, err := NewCached(newTestStore(t), 100)
		require.NoError(t, err)

		require.NoError(t, cached.Set(ctx, "k", []byte("v")))
		_, err = cached.Get(ctx, "k")
		require.NoError(t, err)

		require.NoError(t, cached.Delete(ctx, "k"))
		_, err = cached.Get(ctx, "k")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing key is not cached", func(t *testing.T) {
		cached, err := NewCached(newTestStore(t), 100)
		require.NoError(t, err)

		_, err = cached.Get(ctx, "prefs/theme")
		require.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, cached.Set(ctx, "prefs/theme", []byte("dark")))
		val, err := cached.Get(ctx, "prefs/theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", string(val))
	})
}
