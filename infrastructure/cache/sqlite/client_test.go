package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"biblicalman-api/core/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")

	client, err := NewSQLiteCache(path)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, path
}

func TestSQLiteCache_SetAndGet(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "insight:1", []byte(`{"corePrinciple":"x"}`), time.Hour))

	got, err := client.Get(ctx, "insight:1")
	require.NoError(t, err)
	assert.Equal(t, `{"corePrinciple":"x"}`, string(got))
}

func TestSQLiteCache_Miss(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, interfaces.ErrCacheMiss)
}

func TestSQLiteCache_Expired(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "short", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := client.Get(ctx, "short")
	assert.ErrorIs(t, err, interfaces.ErrCacheMiss)

	client.cleanup()
	var count int
	require.NoError(t, client.db.QueryRow("SELECT COUNT(*) FROM cache").Scan(&count))
	assert.Zero(t, count)
}

func TestSQLiteCache_NoExpiry(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "forever", []byte("v"), 0))
	client.cleanup()

	got, err := client.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestSQLiteCache_KeysAreParameterized(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	keys := []string{
		"key'; DROP TABLE cache; --",
		"key' OR '1'='1",
		"key with spaces",
	}
	for _, key := range keys {
		require.NoError(t, client.Set(ctx, key, []byte(key), time.Hour))
	}
	for _, key := range keys {
		got, err := client.Get(ctx, key)
		require.NoError(t, err, key)
		assert.Equal(t, key, string(got))
	}
}

func TestSQLiteCache_Delete(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", []byte("v"), time.Hour))
	require.NoError(t, client.Delete(ctx, "k"))

	_, err := client.Get(ctx, "k")
	assert.ErrorIs(t, err, interfaces.ErrCacheMiss)
}

func TestSQLiteCache_EmptyKey(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	assert.Error(t, client.Set(ctx, "", []byte("v"), time.Hour))
	_, err := client.Get(ctx, "")
	assert.Error(t, err)
	assert.Error(t, client.Delete(ctx, ""))
}

func TestSQLiteCache_SurvivesReopen(t *testing.T) {
	client, path := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "persist", []byte("v"), time.Hour))
	require.NoError(t, client.Close())

	reopened, err := NewSQLiteCache(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "persist")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}
