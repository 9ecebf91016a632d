// internal/session/redis.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions as JSON strings under prefix+kind:id with a TTL.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(kind, id string) string {
	return s.prefix + key(kind, id)
}

func (s *RedisStore) Save(ctx context.Context, kind, id string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(kind, id), data, s.ttl).Err()
}

func (s *RedisStore) Load(ctx context.Context, kind, id string, v interface{}) error {
	data, err := s.client.Get(ctx, s.key(kind, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (s *RedisStore) Discard(ctx context.Context, kind, id string) error {
	return s.client.Del(ctx, s.key(kind, id)).Err()
}
