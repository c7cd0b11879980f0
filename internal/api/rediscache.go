package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCache is an optional Redis tier for GET responses. It is
// best-effort: any Redis failure falls through to a fresh computation. The
// process-local reservation cache stays authoritative; this tier only
// shields hot calendar reads and is invalidated the same way, on create.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache wraps a Redis client with a TTL for cached responses.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	return &ResponseCache{client: client, ttl: ttl}
}

func dayKey(isoDate string) string {
	return "day:" + isoDate
}

func calendarKey(year int, month time.Month) string {
	return fmt.Sprintf("calendar:%04d-%02d", year, month)
}

func (c *ResponseCache) read(ctx context.Context, key string, out any) bool {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), out) == nil
}

func (c *ResponseCache) write(ctx context.Context, key string, val any) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, data, c.ttl).Err()
}

// invalidateDate drops the day and month keys covering an ISO date.
func (c *ResponseCache) invalidateDate(ctx context.Context, isoDate string) {
	if c == nil || c.client == nil {
		return
	}
	keys := []string{dayKey(isoDate)}
	if t, err := time.Parse("2006-01-02", isoDate); err == nil {
		keys = append(keys, calendarKey(t.Year(), t.Month()))
	}
	_ = c.client.Del(ctx, keys...).Err()
}
