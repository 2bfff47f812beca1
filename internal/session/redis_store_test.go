package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisStore instance
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return store, mr, cleanup
}

func TestRedisStore_CreateAndGet(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()

	sess := Session{
		SessionID: "sid-1",
		UserID:    42,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "sid-1", got.SessionID)
}

func TestRedisStore_GetMissing(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	got, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_CreateRejectsInvalid(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()

	err := store.Create(ctx, Session{
		SessionID: "",
		UserID:    1,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	assert.Error(t, err)

	err = store.Create(ctx, Session{
		SessionID: "sid",
		UserID:    1,
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	assert.Error(t, err)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.Create(ctx, Session{
		SessionID: "sid-del",
		UserID:    7,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, store.Delete(ctx, "sid-del"))

	got, err := store.Get(ctx, "sid-del")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.Create(ctx, Session{
		SessionID: "sid-ttl",
		UserID:    9,
		ExpiresAt: time.Now().Add(time.Minute),
	}))

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "sid-ttl")
	require.NoError(t, err)
	assert.Nil(t, got)
}
