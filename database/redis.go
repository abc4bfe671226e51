package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes and returns a Redis client used for the
// parcel list cache.
func NewRedisClient(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Invalid Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("⚠️ Failed to connect to Redis, list caching disabled: %v", err)
		return nil
	}

	log.Println("Connected to Redis")
	return client
}
