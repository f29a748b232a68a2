package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cryptofolio/cryptofolio/application/port/outbound"
)

// RedisPriceCache stores coin prices under a short TTL so bursts of
// portfolio valuations do not hammer the upstream price API.
type RedisPriceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPriceCache(redisURL string, ttl time.Duration) (*RedisPriceCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisPriceCache{client: client, ttl: ttl}, nil
}

func priceKey(coinID string) string {
	return "price:usd:" + coinID
}

func (c *RedisPriceCache) GetPrice(ctx context.Context, coinID string) (float64, error) {
	price, err := c.client.Get(ctx, priceKey(coinID)).Float64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, outbound.ErrCacheMiss
		}
		return 0, fmt.Errorf("failed to read price from cache: %w", err)
	}
	return price, nil
}

func (c *RedisPriceCache) SetPrice(ctx context.Context, coinID string, price float64) error {
	if err := c.client.Set(ctx, priceKey(coinID), price, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write price to cache: %w", err)
	}
	return nil
}

func (c *RedisPriceCache) Close() error {
	return c.client.Close()
}
