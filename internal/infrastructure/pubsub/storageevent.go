package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chennai-a11y/prefsync/internal/shared/goroutine"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

// StorageEvent reports that one tab of an origin changed a shared cache key.
type StorageEvent struct {
	Key       string `json:"key"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// subscriberBuffer bounds how far a slow tab may fall behind before events
// are dropped. Tabs re-read the current value on each event, so a dropped
// event only matters if it was the last one.
const subscriberBuffer = 64

// RedisStorageEventBus fans storage events out to every process watching an
// origin, using one Redis Pub/Sub channel per origin.
type RedisStorageEventBus struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisStorageEventBus(client *redis.Client, logger logger.Interface) *RedisStorageEventBus {
	return &RedisStorageEventBus{
		client: client,
		logger: logger,
	}
}

// Channel returns the Pub/Sub channel name for origin.
func Channel(origin string) string {
	return "prefsync:storage:" + origin
}

// Publish announces a change of key made by source.
func (b *RedisStorageEventBus) Publish(ctx context.Context, origin, key, source string) error {
	data, err := json.Marshal(StorageEvent{
		Key:       key,
		Source:    source,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, Channel(origin), data).Err(); err != nil {
		b.logger.Errorw("failed to publish storage event",
			"origin", origin,
			"key", key,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Subscribe returns once the subscription is confirmed. Events written by
// exclude are filtered out. The channel is closed when ctx ends.
func (b *RedisStorageEventBus) Subscribe(ctx context.Context, origin, exclude string) (<-chan StorageEvent, error) {
	ps := b.client.Subscribe(ctx, Channel(origin))

	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.logger.Debugw("subscribed to storage events", "channel", Channel(origin))

	out := make(chan StorageEvent, subscriberBuffer)
	goroutine.SafeGo(b.logger, "storage-event-subscriber", func() {
		b.loop(ctx, ps, exclude, out)
	})
	return out, nil
}

func (b *RedisStorageEventBus) loop(ctx context.Context, ps *redis.PubSub, exclude string, out chan<- StorageEvent) {
	defer close(out)
	defer ps.Close()

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("storage event channel closed")
				return
			}

			var event StorageEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warnw("failed to unmarshal storage event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}
			if event.Source == exclude {
				continue
			}

			select {
			case out <- event:
			default:
				b.logger.Warnw("dropping storage event for slow subscriber", "key", event.Key)
			}
		}
	}
}
