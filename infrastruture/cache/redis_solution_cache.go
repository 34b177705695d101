package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/torus-maze/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "torusmaze"
	defaultTTL    = 5 * time.Minute

	solutionKeyFmt = "%s:solution:%s:%d_%d:%d_%d"
	mapIndexKeyFmt = "%s:solutions:%s"
)

// RedisSolutionCache stores rendered solutions in Redis with a TTL.
// Keys of each map are tracked in a set so they can be dropped together.
type RedisSolutionCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ i.SolutionCache = &RedisSolutionCache{}

// NewRedisSolutionCache initializes a RedisSolutionCache with the provided Redis client and TTL.
// A non-positive TTL falls back to five minutes.
func NewRedisSolutionCache(client *redis.Client, prefix string, ttlSeconds int) (*RedisSolutionCache, error) {
	if client == nil {
		return nil, errors.New("nil redis client")
	}
	if prefix == "" {
		prefix = defaultPrefix
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &RedisSolutionCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

// Get fetches a cached solution.
func (c *RedisSolutionCache) Get(ctx context.Context, key i.SolutionKey) (*i.Solution, bool, error) {
	raw, err := c.client.Get(ctx, c.solutionKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var s i.Solution
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, fmt.Errorf("decoding cached solution: %w", err)
	}
	return &s, true, nil
}

// Set stores a solution and records its key in the map index.
func (c *RedisSolutionCache) Set(ctx context.Context, key i.SolutionKey, s *i.Solution) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	solutionKey := c.solutionKey(key)
	indexKey := c.indexKey(key.MapID)
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, solutionKey, raw, c.ttl)
		pipe.SAdd(ctx, indexKey, solutionKey)
		pipe.Expire(ctx, indexKey, c.ttl)
		return nil
	})
	return err
}

// Invalidate removes all cached solutions of a map.
func (c *RedisSolutionCache) Invalidate(ctx context.Context, mapID uuid.UUID) error {
	indexKey := c.indexKey(mapID)
	keys, err := c.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}

	return c.client.Del(ctx, append(keys, indexKey)...).Err()
}

func (c *RedisSolutionCache) solutionKey(key i.SolutionKey) string {
	return fmt.Sprintf(solutionKeyFmt, c.prefix, key.MapID, key.Start.X, key.Start.Y, key.End.X, key.End.Y)
}

func (c *RedisSolutionCache) indexKey(mapID uuid.UUID) string {
	return fmt.Sprintf(mapIndexKeyFmt, c.prefix, mapID)
}
