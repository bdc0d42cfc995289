package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *redisStore {
	return &redisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *redisStore) key(sid, key string) string {
	return s.prefix + sid + ":" + key
}

func (s *redisStore) Get(ctx context.Context, sid, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(sid, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, sid, key string, value []byte) error {
	return s.client.Set(ctx, s.key(sid, key), value, s.ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, sid string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	redisKeys := make([]string, len(keys))
	for i, key := range keys {
		redisKeys[i] = s.key(sid, key)
	}

	return s.client.Del(ctx, redisKeys...).Err()
}
