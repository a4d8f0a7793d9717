package localcache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestReadEmptyCache(t *testing.T) {
	cache := newTestCache(t)

	value, legacy, err := cache.Read(context.Background())
	require.NoError(t, err)
	require.Nil(t, value)
	require.False(t, legacy)
}

func TestWriteRead(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Write(ctx, []byte(`{"streak":3}`)))

	value, legacy, err := cache.Read(ctx)
	require.NoError(t, err)
	require.False(t, legacy)
	require.JSONEq(t, `{"streak":3}`, string(value))

	// Writes replace, not append.
	require.NoError(t, cache.Write(ctx, []byte(`{"streak":4}`)))
	value, _, err = cache.Read(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `{"streak":4}`, string(value))
}

func TestLegacyFallback(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.WriteLegacy(ctx, []byte(`{"streak":7}`)))

	value, legacy, err := cache.Read(ctx)
	require.NoError(t, err)
	require.True(t, legacy)
	require.JSONEq(t, `{"streak":7}`, string(value))

	// A current-key write shadows the legacy row from then on.
	require.NoError(t, cache.Write(ctx, []byte(`{"streak":8}`)))
	value, legacy, err = cache.Read(ctx)
	require.NoError(t, err)
	require.False(t, legacy)
	require.JSONEq(t, `{"streak":8}`, string(value))
}

func TestClear(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Write(ctx, []byte(`{}`)))
	require.NoError(t, cache.WriteLegacy(ctx, []byte(`{}`)))
	require.NoError(t, cache.Clear(ctx))

	value, legacy, err := cache.Read(ctx)
	require.NoError(t, err)
	require.Nil(t, value)
	require.False(t, legacy)
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")
	cache, err := Open(path)
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Write(context.Background(), []byte(`{}`)))
}
