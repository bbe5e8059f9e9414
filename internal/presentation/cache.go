package presentation

import (
	"context"
	"sync"

	"github.com/chennai-a11y/prefsync/internal/infrastructure/pubsub"
)

// SettingsKey is the cache key holding the serialized settings record.
const SettingsKey = "appSettings"

// StorageEvent reports a change made by another tab.
type StorageEvent = pubsub.StorageEvent

// Cache is the storage shared by all tabs of one origin. Subscribers are
// told about every write except their own.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, source, key string, value []byte) error
	// Subscribe returns once events are being delivered. The channel is
	// closed when ctx ends.
	Subscribe(ctx context.Context, subscriber string) (<-chan StorageEvent, error)
}

const memorySubscriberBuffer = 64

type memorySubscriber struct {
	id string
	ch chan StorageEvent
}

// MemoryCache is a Cache for tabs living in one process.
type MemoryCache struct {
	mu          sync.Mutex
	values      map[string][]byte
	subscribers map[*memorySubscriber]struct{}
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		values:      make(map[string][]byte),
		subscribers: make(map[*memorySubscriber]struct{}),
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (c *MemoryCache) Set(ctx context.Context, source, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = stored

	event := StorageEvent{Key: key, Source: source}
	for sub := range c.subscribers {
		if sub.id == source {
			continue
		}
		select {
		case sub.ch <- event:
		default:
		}
	}
	return nil
}

func (c *MemoryCache) Subscribe(ctx context.Context, subscriber string) (<-chan StorageEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sub := &memorySubscriber{
		id: subscriber,
		ch: make(chan StorageEvent, memorySubscriberBuffer),
	}

	c.mu.Lock()
	c.subscribers[sub] = struct{}{}
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		delete(c.subscribers, sub)
		close(sub.ch)
		c.mu.Unlock()
	}()

	return sub.ch, nil
}
