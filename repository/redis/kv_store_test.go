package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/agrofocus/domain"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redislib.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestKeyValueStoreNamespacesKeys(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	store := NewKeyValueStore(client, "farm-1")

	require.NoError(t, store.Set(ctx, "isLoggedIn", "true"))

	raw, err := mr.Get("agrofocus:farm-1:isLoggedIn")
	require.NoError(t, err)
	assert.Equal(t, "true", raw)

	v, err := store.Get(ctx, "isLoggedIn")
	require.NoError(t, err)
	assert.Equal(t, "true", v)
}

func TestKeyValueStoreMissingKey(t *testing.T) {
	_, client := setupRedis(t)
	store := NewKeyValueStore(client, "")

	_, err := store.Get(context.Background(), "users")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestKeyValueStoreClearOnlyTouchesOwnNamespace(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	mine := NewKeyValueStore(client, "a")
	theirs := NewKeyValueStore(client, "b")

	require.NoError(t, mine.Set(ctx, "users", "[]"))
	require.NoError(t, mine.Set(ctx, "currentUser", "{}"))
	require.NoError(t, theirs.Set(ctx, "users", "[]"))
	require.NoError(t, mr.Set("unrelated", "x"))

	require.NoError(t, mine.Clear(ctx))

	_, err := mine.Get(ctx, "users")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	_, err = theirs.Get(ctx, "users")
	assert.NoError(t, err)
	assert.True(t, mr.Exists("unrelated"))
}

func TestKeyValueStoreClearEscapesWildcardClientID(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	neighbour := NewKeyValueStore(client, "abc")
	require.NoError(t, neighbour.Set(ctx, "users", "[]"))

	for _, id := range []string{"a*", "a?c", "[a]bc", `a\`} {
		store := NewKeyValueStore(client, id)
		require.NoError(t, store.Set(ctx, "users", "[]"))

		require.NoError(t, store.Clear(ctx), id)

		_, err := store.Get(ctx, "users")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound, id)
		assert.True(t, mr.Exists("agrofocus:abc:users"), id)
	}
}

func TestKeyValueStorePing(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewKeyValueStore(client, "a")
	require.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
