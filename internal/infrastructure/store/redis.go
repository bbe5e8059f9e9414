package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

// RedisStore keeps one string key per identity token, without expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger logger.Interface
}

// NewRedisStore creates a store whose keys are prefix+token.
func NewRedisStore(client *redis.Client, prefix string, logger logger.Interface) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (s *RedisStore) Get(ctx context.Context, token string) (preference.Document, error) {
	data, err := s.client.Get(ctx, s.buildKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return preference.DefaultDocument(), nil
		}
		s.logger.Errorw("failed to read settings from redis", "error", err)
		return nil, fmt.Errorf("failed to read settings from redis: %w", err)
	}
	return preference.Document(data), nil
}

func (s *RedisStore) Put(ctx context.Context, token string, doc preference.Document) error {
	if err := s.client.Set(ctx, s.buildKey(token), []byte(doc), 0).Err(); err != nil {
		s.logger.Errorw("failed to write settings to redis", "error", err)
		return fmt.Errorf("failed to write settings to redis: %w", err)
	}
	return nil
}

func (s *RedisStore) buildKey(token string) string {
	return s.prefix + token
}
