package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

func setupTestRedis(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client
}

func receive(t *testing.T, ch <-chan StorageEvent) (StorageEvent, bool) {
	t.Helper()
	select {
	case ev, ok := <-ch:
		return ev, ok
	case <-time.After(2 * time.Second):
		return StorageEvent{}, false
	}
}

func TestRedisStorageEventBus_DeliversToOthers(t *testing.T) {
	bus := NewRedisStorageEventBus(setupTestRedis(t), logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := bus.Subscribe(ctx, "http://localhost:3000", "tab-b")
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, "http://localhost:3000", "appSettings", "tab-a"))

	ev, ok := receive(t, events)
	require.True(t, ok)
	assert.Equal(t, "appSettings", ev.Key)
	assert.Equal(t, "tab-a", ev.Source)
}

func TestRedisStorageEventBus_ExcludesOwnWrites(t *testing.T) {
	bus := NewRedisStorageEventBus(setupTestRedis(t), logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := bus.Subscribe(ctx, "origin", "tab-a")
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, "origin", "appSettings", "tab-a"))
	require.NoError(t, bus.Publish(ctx, "origin", "appSettings", "tab-c"))

	ev, ok := receive(t, events)
	require.True(t, ok)
	assert.Equal(t, "tab-c", ev.Source)
}

func TestRedisStorageEventBus_OriginsAreIsolated(t *testing.T) {
	bus := NewRedisStorageEventBus(setupTestRedis(t), logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := bus.Subscribe(ctx, "origin-1", "tab-b")
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, "origin-2", "appSettings", "tab-a"))
	require.NoError(t, bus.Publish(ctx, "origin-1", "marker", "tab-a"))

	ev, ok := receive(t, events)
	require.True(t, ok)
	assert.Equal(t, "marker", ev.Key)
}

func TestRedisStorageEventBus_ClosesOnCancel(t *testing.T) {
	bus := NewRedisStorageEventBus(setupTestRedis(t), logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	events, err := bus.Subscribe(ctx, "origin", "tab-a")
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel was not closed")
	}
}
