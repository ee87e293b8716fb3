package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventhub/event-management-api/internal/api/metrics"
	"github.com/eventhub/event-management-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// EventCache is a read-through cache for single-event lookups backed by
// Redis. Key format: event:<id>. A miss is reported as (nil, nil); the
// store stays the source of truth.
type EventCache struct {
	client *redis.Client
}

// NewEventCache creates an EventCache wrapping the given Redis client.
func NewEventCache(client *redis.Client) *EventCache {
	return &EventCache{client: client}
}

// Get returns the cached event, or (nil, nil) when the key is absent.
func (c *EventCache) Get(ctx context.Context, id string) (*domain.Event, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.EventCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("event cache get: %w", err)
	}

	var event domain.Event
	if err := json.Unmarshal(raw, &event); err != nil {
		// Corrupt entry: drop it and report a miss.
		_ = c.client.Del(ctx, c.key(id)).Err()
		metrics.EventCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}

	metrics.EventCacheTotal.WithLabelValues("hit").Inc()
	return &event, nil
}

// Set stores the event with the cache TTL.
func (c *EventCache) Set(ctx context.Context, event *domain.Event) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("event cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(event.ID), raw, cacheTTL).Err()
}

// Invalidate removes the cached entry after a mutation.
func (c *EventCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *EventCache) key(id string) string {
	return "event:" + id
}
