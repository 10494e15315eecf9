package utils

import (
	"context"
	"log"
	"time"

	"mentorloop/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient backs the actor directory's read-through cache. The alert
// queue uses its own Redis database; the two never share keys.
var CacheClient *redis.Client

// InitCache connects the cache client and verifies the connection. Startup
// aborts if Redis is unreachable: the actor cache is not optional, only the
// entries in it are.
func InitCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to Redis cache: %v", err)
	}

	CacheClient = client
	zap.L().Info("connected to Redis cache", zap.Int("db", config.AppConfig.RedisCacheDB))
}

// GetCacheClient returns the cache client, initializing it on first use.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
