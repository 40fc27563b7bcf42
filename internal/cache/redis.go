package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client wraps the Redis connection used for menu snapshot caching.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewClient connects using REDIS_ADDR. The cache is an optional layer; the
// caller decides what to do when the variable is unset.
func NewClient(ttl time.Duration) (*Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR environment variable not set")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("Connected to Redis")

	return &Client{rdb: rdb, ttl: ttl}, nil
}

func (c *Client) Close() {
	if c != nil && c.rdb != nil {
		_ = c.rdb.Close()
		log.Println("Redis connection closed")
	}
}

func menuKey(restaurantID string) string {
	return "menu:snapshot:" + restaurantID
}

// InvalidateMenu drops a restaurant's cached snapshot after any mutation,
// forcing the next view-load to hit Postgres. Safe on a nil client.
func (c *Client) InvalidateMenu(ctx context.Context, restaurantID string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, menuKey(restaurantID)).Err(); err != nil {
		log.Printf("cache invalidation failed for %s: %v", restaurantID, err)
	}
}
