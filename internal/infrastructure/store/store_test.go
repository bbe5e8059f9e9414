package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/persistence/models"
	"github.com/chennai-a11y/prefsync/internal/shared/config"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.UserPreferenceModel{}))
	return db
}

func allStores(t *testing.T) map[string]preference.Store {
	client, _ := setupTestRedis(t)
	return map[string]preference.Store{
		"memory":   NewMemoryStore(),
		"redis":    NewRedisStore(client, "test:settings:", logger.NewNop()),
		"database": NewGormStore(setupTestDB(t), logger.NewNop()),
	}
}

func TestStore_UnwrittenTokenReturnsDefaults(t *testing.T) {
	for name, s := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			doc, err := s.Get(context.Background(), "never-written")
			require.NoError(t, err)
			assert.JSONEq(t, string(preference.DefaultDocument()), string(doc))
		})
	}
}

func TestStore_WriteThenReadIsVerbatim(t *testing.T) {
	for name, s := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			written := preference.Document(`{"darkMode":false,"fontSize":"large","language":"ta"}`)

			require.NoError(t, s.Put(ctx, "user-1", written))

			got, err := s.Get(ctx, "user-1")
			require.NoError(t, err)
			assert.JSONEq(t, string(written), string(got))
		})
	}
}

func TestStore_PutReplacesWithoutMerging(t *testing.T) {
	for name, s := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Put(ctx, "user-1", preference.Document(`{"darkMode":false,"highContrast":true}`)))
			require.NoError(t, s.Put(ctx, "user-1", preference.Document(`{"reduceMotion":true}`)))

			got, err := s.Get(ctx, "user-1")
			require.NoError(t, err)
			assert.JSONEq(t, `{"reduceMotion":true}`, string(got))
		})
	}
}

func TestStore_DefaultIsNotPersisted(t *testing.T) {
	client, mr := setupTestRedis(t)
	s := NewRedisStore(client, "test:settings:", logger.NewNop())

	_, err := s.Get(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, mr.Exists("test:settings:ghost"))
}

func TestStore_TokensAreIsolated(t *testing.T) {
	for name, s := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Put(ctx, "a", preference.Document(`{"language":"ta"}`)))

			got, err := s.Get(ctx, "b")
			require.NoError(t, err)
			assert.Equal(t, preference.DefaultLanguage, got.Language())
		})
	}
}

func TestMemoryStore_ConcurrentWritesLastWins(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Put(ctx, "shared", preference.Document(fmt.Sprintf(`{"voiceVolume":%d}`, i)))
		}(i)
	}
	wg.Wait()

	got, err := s.Get(ctx, "shared")
	require.NoError(t, err)
	settings, _ := got.Decode()
	assert.GreaterOrEqual(t, settings.VoiceVolume, 0)
	assert.Less(t, settings.VoiceVolume, 50)
}

func TestMemoryStore_HonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryStore().Get(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedisStore_SurfacesBackendFailure(t *testing.T) {
	client, mr := setupTestRedis(t)
	s := NewRedisStore(client, "test:settings:", logger.NewNop())
	mr.Close()

	_, err := s.Get(context.Background(), "x")
	assert.Error(t, err)
}

func TestNew_SelectsDriver(t *testing.T) {
	client, _ := setupTestRedis(t)
	log := logger.NewNop()

	s, err := New(config.StoreConfig{Driver: config.StoreDriverMemory}, Backends{}, log)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = New(config.StoreConfig{Driver: config.StoreDriverRedis, KeyPrefix: "p:"}, Backends{Redis: client}, log)
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, s)

	_, err = New(config.StoreConfig{Driver: config.StoreDriverDatabase}, Backends{}, log)
	assert.Error(t, err)

	_, err = New(config.StoreConfig{Driver: "etcd"}, Backends{}, log)
	assert.Error(t, err)
}
