package i18n

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const languageKey = "settings:language"

// RedisStore persists the language selection in Redis so it survives
// restarts, the server-side analog of the original localStorage entry.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context) (Language, error) {
	val, err := s.client.Get(ctx, languageKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return Language(val), nil
}

func (s *RedisStore) Save(ctx context.Context, lang Language) error {
	return s.client.Set(ctx, languageKey, string(lang), 0).Err()
}
