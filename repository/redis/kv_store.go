package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/agrofocus/domain"
	"github.com/fastygo/agrofocus/repository"
)

const scanBatch = 100

// globEscaper quotes the characters SCAN MATCH treats as wildcards.
var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

type kvStore struct {
	client  *redislib.Client
	prefix  string
	pattern string
}

// NewKeyValueStore creates a Redis-backed store whose keys live under a
// per-client namespace, so several clients can share one Redis.
func NewKeyValueStore(client *redislib.Client, clientID string) repository.KeyValueStore {
	if clientID == "" {
		clientID = "default"
	}
	prefix := fmt.Sprintf("agrofocus:%s:", clientID)
	return &kvStore{
		client:  client,
		prefix:  prefix,
		pattern: globEscaper.Replace(prefix) + "*",
	}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, error) {
	result, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return "", domain.ErrKeyNotFound
		}
		return "", err
	}
	return result, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return domain.ErrInvalidPayload
	}
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *kvStore) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.pattern, scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (s *kvStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *kvStore) key(key string) string {
	return s.prefix + key
}
