package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckInterval = 60 * time.Second

// HealthStatus is the last observed state of the external stores.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	healthMu      sync.RWMutex
	currentHealth HealthStatus
)

// GetHealthStatus returns the most recent health snapshot. It never probes
// the stores itself, so the health endpoint stays cheap.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes Mongo and Redis on a fixed interval and records
// the result for GetHealthStatus. The first probe runs immediately so the
// endpoint is meaningful right after startup.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		status := HealthStatus{
			Mongo:     mongoClient.Ping(ctx, nil) == nil,
			Redis:     redisClient.Ping(ctx).Err() == nil,
			CheckedAt: time.Now(),
		}

		healthMu.Lock()
		currentHealth = status
		healthMu.Unlock()
	}

	go func() {
		probe()
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}
