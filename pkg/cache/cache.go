package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v9"
)

type Config struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type RedisCache struct {
	client *redis.Client
}

func New(cfg Config) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *RedisCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	return c.client.Set(ctx, key, value, expiresAt).Err()
}

func (c *RedisCache) SetNX(ctx context.Context, key, value string, expiresAt time.Duration) (bool, error) {
	return c.client.SetNX(ctx, key, value, expiresAt).Result()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
