package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisContext keeps session state in a Redis hash so conversation state
// survives process restarts of the transport tier. Values are JSON
// encoded; the hash expires after ttl of inactivity. Redis failures
// degrade to cache misses rather than surfacing errors into the domain
// layer.
type redisContext struct {
	client *redis.Client
	logger *zap.Logger
	key    string
	ttl    time.Duration
}

// NewRedisContext returns a Context backed by the given Redis client.
func NewRedisContext(client *redis.Client, logger *zap.Logger, sessionID string, ttl time.Duration) Context {
	return &redisContext{
		client: client,
		logger: logger,
		key:    "session:" + sessionID,
		ttl:    ttl,
	}
}

func (c *redisContext) Get(key string) (any, bool) {
	raw, err := c.client.HGet(context.Background(), c.key, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("session read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		c.logger.Warn("session entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return value, true
}

func (c *redisContext) Put(key string, value any) {
	encoded, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("session value not serializable", zap.String("key", key), zap.Error(err))
		return
	}
	ctx := context.Background()
	if err := c.client.HSet(ctx, c.key, key, encoded).Err(); err != nil {
		c.logger.Warn("session write failed", zap.String("key", key), zap.Error(err))
		return
	}
	if c.ttl > 0 {
		_ = c.client.Expire(ctx, c.key, c.ttl).Err()
	}
}

func (c *redisContext) Remove(key string) {
	if err := c.client.HDel(context.Background(), c.key, key).Err(); err != nil {
		c.logger.Warn("session delete failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *redisContext) Clear() {
	if err := c.client.Del(context.Background(), c.key).Err(); err != nil {
		c.logger.Warn("session clear failed", zap.Error(err))
	}
}
