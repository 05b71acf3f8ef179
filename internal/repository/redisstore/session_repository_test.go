package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	mr, rdb := setupRedis(t)
	repo := NewSessionRepository(rdb, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "abc", 7, 0))
	assert.True(t, mr.Exists("session:abc"))
	assert.Equal(t, time.Hour, mr.TTL("session:abc"))

	id, ok, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)

	require.NoError(t, repo.Delete(ctx, "abc"))
	_, ok, err = repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRepository_ExpiredKeyIsMissing(t *testing.T) {
	mr, rdb := setupRedis(t)
	repo := NewSessionRepository(rdb, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "old", 3, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, ok, err := repo.Get(ctx, "old")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRepository_CorruptValue(t *testing.T) {
	mr, rdb := setupRedis(t)
	repo := NewSessionRepository(rdb, time.Hour)

	require.NoError(t, mr.Set("session:bad", "not-a-number"))

	_, _, err := repo.Get(context.Background(), "bad")
	assert.Error(t, err)
}
