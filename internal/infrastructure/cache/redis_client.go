package cache

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis creates a Redis client from environment variables and verifies
// the connection. It returns nil when REDIS_ADDR is unset or unreachable; the
// dashboard then runs uncached.
//
// Supported env vars:
//   - REDIS_ADDR (e.g. redis:6379; empty disables caching)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (optional, default 0)
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Printf("[cache][redis] REDIS_ADDR not set, dashboard caching disabled")
		return nil
	}

	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			db = parsed
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[cache][redis] ping failed addr=%s err=%v, dashboard caching disabled", addr, err)
		return nil
	}
	return client
}
