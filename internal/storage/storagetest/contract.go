// Package storagetest holds the behaviour every storage adapter must share
// and a testify mock for failure paths.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CookieClicker_Go/internal/storage"
)

// RunContract exercises an adapter produced by newAdapter. Every subtest
// gets a fresh adapter.
func RunContract(t *testing.T, newAdapter func(t *testing.T) storage.Adapter) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetMissing", func(t *testing.T) {
		a := newAdapter(t)
		v, ok, err := a.Get(ctx, "game:absent")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("SetThenGet", func(t *testing.T) {
		a := newAdapter(t)
		require.NoError(t, a.Set(ctx, "game:cookies", "12.5"))

		v, ok, err := a.Get(ctx, "game:cookies")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "12.5", v)
	})

	t.Run("Overwrite", func(t *testing.T) {
		a := newAdapter(t)
		require.NoError(t, a.Set(ctx, "game:cookies", "1"))
		require.NoError(t, a.Set(ctx, "game:cookies", "2"))

		v, _, err := a.Get(ctx, "game:cookies")
		require.NoError(t, err)
		assert.Equal(t, "2", v)
	})

	t.Run("EmptyValueIsPresent", func(t *testing.T) {
		a := newAdapter(t)
		require.NoError(t, a.Set(ctx, "game:empty", ""))

		v, ok, err := a.Get(ctx, "game:empty")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("SetManyGetMany", func(t *testing.T) {
		a := newAdapter(t)
		values := map[string]string{
			"game:cookies":   "3",
			"game:producers": `[{"id":"cursor","owned":1,"cost":17}]`,
		}
		require.NoError(t, a.SetMany(ctx, values))

		got, err := a.GetMany(ctx, []string{"game:cookies", "game:producers", "game:missing"})
		require.NoError(t, err)
		assert.Equal(t, values, got)
	})

	t.Run("Remove", func(t *testing.T) {
		a := newAdapter(t)
		require.NoError(t, a.Set(ctx, "game:cookies", "3"))
		require.NoError(t, a.Remove(ctx, "game:cookies"))
		require.NoError(t, a.Remove(ctx, "game:cookies"), "removing a missing key is not an error")

		_, ok, err := a.Get(ctx, "game:cookies")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("KeysAreIsolated", func(t *testing.T) {
		a := newAdapter(t)
		require.NoError(t, a.Set(ctx, "alice:cookies", "1"))
		require.NoError(t, a.Set(ctx, "bob:cookies", "2"))

		got, err := a.GetMany(ctx, []string{"alice:cookies"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"alice:cookies": "1"}, got)
	})
}
