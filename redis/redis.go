package redis

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects the cache used for geolocation lookups. The cache is
// optional: when REDIS_ADDR is unset or unreachable the app runs without it.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, geolocation cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	// Test connection
	_, err := client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Failed to connect to Redis: %v, geolocation cache disabled", err)
		return
	}

	Client = client
	fmt.Println("✅ Connected to Redis")
}
