package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/config"
	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	airportsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, airportsTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}), airportsTTL)
}

func NewRedisCacheWithClient(client *redis.Client, airportsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      client,
		airportsTTL: airportsTTL,
	}
}

// GetAirports returns the cached list, or nil on a miss.
func (c *RedisCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	data, err := c.client.Get(ctx, airportsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var airports []domain.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (c *RedisCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	payload, err := json.Marshal(airports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, airportsKey(), payload, c.airportsTTL).Err()
}

func (c *RedisCache) InvalidateAirports(ctx context.Context) error {
	return c.client.Del(ctx, airportsKey()).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func airportsKey() string {
	return "cache:airports"
}
