package database

import (
	"context"
	"log"
	"time"

	"mentorloop/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoClient is the shared MongoDB client, set once at startup.
var MongoClient *mongo.Client

// InitDB connects to MongoDB using the configured URL and verifies the
// connection with a ping. Startup aborts if the store is unreachable.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(config.AppConfig.DatabaseURL).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	zap.L().Info("connected to MongoDB")
}
