package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
)

const keyPrefix = "nutricoach:"

// RedisCacheStore keeps JSON documents in Redis under a namespaced key.
type RedisCacheStore struct {
	rdb *redis.Client
}

var _ contract.ICache = (*RedisCacheStore)(nil)

func NewRedisCacheStore(rdb *redis.Client) *RedisCacheStore {
	return &RedisCacheStore{rdb: rdb}
}

func namespaced(key string) string { return keyPrefix + key }

func (c *RedisCacheStore) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	b, err := c.rdb.Get(ctx, namespaced(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	// a corrupt entry is treated as a miss and overwritten on the next set
	if err := json.Unmarshal(b, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *RedisCacheStore) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}
	return c.rdb.Set(ctx, namespaced(key), data, ttl).Err()
}

func (c *RedisCacheStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = namespaced(k)
	}
	return c.rdb.Del(ctx, full...).Err()
}

// DeletePrefix removes every key starting with prefix, in batches.
func (c *RedisCacheStore) DeletePrefix(ctx context.Context, prefix string) error {
	iter := c.rdb.Scan(ctx, 0, namespaced(prefix)+"*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n%200 != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
