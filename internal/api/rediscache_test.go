package api

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniCache(t *testing.T) (*ResponseCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewResponseCache(client, time.Minute), mr
}

func TestResponseCache_ReadWrite(t *testing.T) {
	c, _ := newMiniCache(t)
	ctx := context.Background()

	type payload struct {
		Message string `json:"message"`
	}

	var got payload
	assert.False(t, c.read(ctx, dayKey("2025-06-14"), &got))

	c.write(ctx, dayKey("2025-06-14"), payload{Message: "dolu"})
	require.True(t, c.read(ctx, dayKey("2025-06-14"), &got))
	assert.Equal(t, "dolu", got.Message)
}

func TestResponseCache_TTL(t *testing.T) {
	c, mr := newMiniCache(t)
	ctx := context.Background()

	c.write(ctx, dayKey("2025-06-14"), map[string]string{"k": "v"})
	mr.FastForward(2 * time.Minute)

	var got map[string]string
	assert.False(t, c.read(ctx, dayKey("2025-06-14"), &got))
}

func TestResponseCache_InvalidateDate(t *testing.T) {
	c, _ := newMiniCache(t)
	ctx := context.Background()

	c.write(ctx, dayKey("2025-06-14"), map[string]string{"k": "v"})
	c.write(ctx, calendarKey(2025, time.June), map[string]string{"k": "v"})
	c.write(ctx, calendarKey(2025, time.July), map[string]string{"k": "v"})

	c.invalidateDate(ctx, "2025-06-14")

	var got map[string]string
	assert.False(t, c.read(ctx, dayKey("2025-06-14"), &got))
	assert.False(t, c.read(ctx, calendarKey(2025, time.June), &got))
	assert.True(t, c.read(ctx, calendarKey(2025, time.July), &got))
}

func TestResponseCache_NilSafe(t *testing.T) {
	var c *ResponseCache
	ctx := context.Background()

	var got map[string]string
	assert.False(t, c.read(ctx, "k", &got))
	c.write(ctx, "k", map[string]string{})
	c.invalidateDate(ctx, "2025-06-14")
}
