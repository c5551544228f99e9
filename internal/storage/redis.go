package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 5 * time.Second

// RedisMedium implements Medium backed by Redis. The medium stores plain
// string records; TTL accounting stays inside the cache store, so records
// are written without Redis-side expiration.
type RedisMedium struct {
	client *redis.Client
}

// RedisMediumConfig holds connection settings for the Redis medium.
type RedisMediumConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisMedium connects to Redis and verifies the connection.
func NewRedisMedium(cfg RedisMediumConfig) (*RedisMedium, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  redisOpTimeout,
		WriteTimeout: redisOpTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	log.Printf("[RedisMedium] Connected - addr:%s db:%d", cfg.Addr, cfg.DB)
	return &RedisMedium{client: client}, nil
}

func (m *RedisMedium) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), redisOpTimeout)
}

// GetItem retrieves a value by key.
func (m *RedisMedium) GetItem(key string) (string, error) {
	ctx, cancel := m.opContext()
	defer cancel()

	value, err := m.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cache record: %w", err)
	}
	return value, nil
}

// SetItem stores a value.
func (m *RedisMedium) SetItem(key, value string) error {
	ctx, cancel := m.opContext()
	defer cancel()

	if err := m.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cache record: %w", err)
	}
	return nil
}

// RemoveItem deletes a key.
func (m *RedisMedium) RemoveItem(key string) error {
	ctx, cancel := m.opContext()
	defer cancel()

	if err := m.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache record: %w", err)
	}
	return nil
}

// Keys returns all keys starting with prefix, using SCAN to avoid blocking
// the server on large keyspaces.
func (m *RedisMedium) Keys(prefix string) ([]string, error) {
	ctx, cancel := m.opContext()
	defer cancel()

	var keys []string
	iter := m.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan cache records: %w", err)
	}
	return keys, nil
}

// Close closes the Redis client.
func (m *RedisMedium) Close() error {
	return m.client.Close()
}
