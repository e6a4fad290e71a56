package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	Rdb = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = Rdb.Close()
		Rdb = nil
	})
	return mr
}

func TestGetInt64(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	_, ok, err := GetInt64(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, SetWithExpiration(ctx, "count", 42, time.Minute))
	v, ok, err := GetInt64(ctx, "count")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)

	mr.FastForward(2 * time.Minute)
	_, ok, err = GetInt64(ctx, "count")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExistsAndDelete(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetWithExpiration(ctx, "a", "1", 0))
	require.NoError(t, SetWithExpiration(ctx, "b", "1", 0))

	ok, err := Exists(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, DeleteKey(ctx, "a", "b"))
	ok, err = Exists(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)
}
