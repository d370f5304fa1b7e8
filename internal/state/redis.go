package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/slazien/trackguard/internal/models"
)

const opTimeout = 3 * time.Second

// RedisStore keeps the validation state as a single JSON value. Deployments
// that shard the auditor horizontally give each shard its own key.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{
		client: client,
		key:    key,
	}
}

// Connect dials Redis with a bounded ping-retry loop.
func Connect(ctx context.Context, addr string, password string, maxRetries int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	var err error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			backoff := time.Duration(1<<uint(i)) * time.Second
			log.Info().Dur("backoff", backoff).Msg("Waiting before Redis retry")
			time.Sleep(backoff)
		}

		err = client.Ping(ctx).Err()
		if err == nil {
			return client, nil
		}

		log.Warn().Err(err).Int("attempt", i+1).Msg("Redis ping failed")
	}

	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", maxRetries, err)
}

func (s *RedisStore) Load() (models.ValidationState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.DefaultValidationState(), nil
		}
		return models.ValidationState{}, fmt.Errorf("read state key %s: %w", s.key, err)
	}

	var st models.ValidationState
	if err := json.Unmarshal(data, &st); err != nil {
		return models.ValidationState{}, fmt.Errorf("parse state key %s: %w", s.key, err)
	}

	if st.CurrentInterval < models.MinInterval || st.CurrentInterval > models.MaxInterval {
		return models.ValidationState{}, fmt.Errorf("state key %s: interval %d out of range", s.key, st.CurrentInterval)
	}

	return st, nil
}

// Save is a single SET, which is atomic on the Redis side.
func (s *RedisStore) Save(st models.ValidationState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write state key %s: %w", s.key, err)
	}
	return nil
}
