// internal/common/database/redis.go
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"idea-match-workers/internal/common/config"
)

const (
	defaultRedisPoolSize = 10
	redisDialTimeout     = 5 * time.Second
	redisIOTimeout       = 3 * time.Second
)

// RedisClient holds the profile and dismissed-list cache.
type RedisClient struct {
	Client *redis.Client
}

func NewRedis(cfg config.RedisConfig) (*RedisClient, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address is required")
	}

	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = defaultRedisPoolSize
	}

	return &RedisClient{Client: redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  redisDialTimeout,
		ReadTimeout:  redisIOTimeout,
		WriteTimeout: redisIOTimeout,
		PoolSize:     poolSize,
		MinIdleConns: 1,
	})}, nil
}

func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping %s: %w", c.Client.Options().Addr, err)
	}
	return nil
}

// PoolStats summarizes connection pool usage for shutdown logs.
func (c *RedisClient) PoolStats() map[string]interface{} {
	s := c.Client.PoolStats()
	return map[string]interface{}{
		"hits":       s.Hits,
		"misses":     s.Misses,
		"timeouts":   s.Timeouts,
		"totalConns": s.TotalConns,
		"idleConns":  s.IdleConns,
	}
}

func (c *RedisClient) Close() error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Close()
}
