package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/bough/pkg/adapters/redis"
	"github.com/aretw0/bough/pkg/domain"
	contract "github.com/aretw0/bough/pkg/ports/tests"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newTestClient(t)
	contract.TraceStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newTestClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	record := &domain.TraceRecord{
		ID:        "trace-ttl",
		Value:     "beach",
		Effects:   []string{"checked season"},
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(ctx, record))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "trace-ttl")

	// Fast forward past the TTL (miniredis key expiration).
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "trace-ttl")
	assert.ErrorIs(t, err, domain.ErrTraceNotFound)

	// The index is pruned lazily against wall-clock time, so wait out the
	// real TTL before expecting List to drop the entry.
	time.Sleep(1200 * time.Millisecond)

	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newTestClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.TraceRecord{ID: "abc", Value: 1}))

	assert.True(t, mr.Exists("custom:abc"), "expected record under custom prefix")
	assert.False(t, mr.Exists("bough:trace:abc"), "default prefix should be unused")
}
