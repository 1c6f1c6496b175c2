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

type cached struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := New(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestClient_SetGetDelete(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	var got cached
	ok, err := c.Get(ctx, "event:1", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "event:1", cached{ID: 1, Name: "Jazz"}, time.Minute))
	assert.True(t, mr.Exists("eventhub:event:1"))

	ok, err = c.Get(ctx, "event:1", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, cached{ID: 1, Name: "Jazz"}, got)

	require.NoError(t, c.Delete(ctx, "event:1", "event:2"))
	assert.False(t, mr.Exists("eventhub:event:1"))
	require.NoError(t, c.Delete(ctx))
}

func TestClient_TTLExpires(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "event:9", cached{ID: 9}, 30*time.Second))
	mr.FastForward(31 * time.Second)

	var got cached
	ok, err := c.Get(ctx, "event:9", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_CorruptValue(t *testing.T) {
	c, mr := newTestClient(t)
	require.NoError(t, mr.Set("eventhub:event:3", "not-json"))

	var got cached
	ok, err := c.Get(context.Background(), "event:3", &got)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNew_Unreachable(t *testing.T) {
	_, err := New(context.Background(), "redis://127.0.0.1:1")
	assert.Error(t, err)

	_, err = New(context.Background(), "://bad")
	assert.Error(t, err)
}

func TestNewFromClient_Ping(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer c.Close()
	assert.NoError(t, c.Ping(context.Background()))
}
