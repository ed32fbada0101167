package config

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

var (
	redisOnce   sync.Once
	redisClient *redis.Client
	redisErr    error
)

// ConnectRedis returns the shared client for the notification read cache.
// Redis is optional: callers must treat a connection error as a cache miss.
func ConnectRedis() (*redis.Client, error) {
	redisOnce.Do(func() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     os.Getenv("REDIS_ADDR"),
			Username: os.Getenv("REDIS_USER"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		})

		if _, err := rdb.Ping(Ctx).Result(); err != nil {
			redisErr = err
			log.Printf("Redis unavailable, notification cache disabled: %v", err)
			return
		}

		log.Println("Redis connected successfully")
		redisClient = rdb
	})

	if redisErr != nil {
		return nil, redisErr
	}
	return redisClient, nil
}
