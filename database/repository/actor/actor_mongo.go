package actorRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mentorloop/database"
	"mentorloop/models"
	"mentorloop/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no actor matches the requested id.
var ErrNotFound = errors.New("actor not found")

// ActorRepository resolves actor identities (mentor and mentee profiles) for
// display names and push tokens. Profile CRUD itself lives outside this core.
type ActorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Actor, error)
	// ResolveNames maps each id to its display name. Unknown ids fall back to
	// the raw id so callers always get a usable label.
	ResolveNames(ctx context.Context, ids []string) (map[string]string, error)
}

const cacheTTL = 10 * time.Minute

// MongoActorRepo implements ActorRepository using MongoDB with a Redis
// read-through cache in front of profile lookups.
type MongoActorRepo struct {
	coll *mongo.Collection
}

// NewMongoActorRepo creates a new instance of ActorRepository using MongoDB.
func NewMongoActorRepo() ActorRepository {
	coll := database.MongoClient.Database("mentorloop").Collection("actors")
	repo := &MongoActorRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create actor indexes: %v\n", err)
	}
	return repo
}

func cacheKey(id string) string {
	return "actor:" + id
}

// GetByID retrieves an actor, consulting the cache first.
func (r *MongoActorRepo) GetByID(ctx context.Context, id string) (*models.Actor, error) {
	cache := utils.GetCacheClient()

	if data, err := cache.Get(ctx, cacheKey(id)).Result(); err == nil {
		var actor models.Actor
		if err := json.Unmarshal([]byte(data), &actor); err == nil {
			return &actor, nil
		}
	}

	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var actor models.Actor
	if err := r.coll.FindOne(dbCtx, bson.M{"id": id}).Decode(&actor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch actor with id %s: %w", id, err)
	}

	if data, err := json.Marshal(actor); err == nil {
		// Cache write failures are non-fatal; the next lookup hits Mongo again.
		cache.Set(ctx, cacheKey(id), data, cacheTTL)
	}
	return &actor, nil
}

// ResolveNames maps requester/provider ids to display names.
func (r *MongoActorRepo) ResolveNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	for _, id := range ids {
		if _, ok := names[id]; ok {
			continue
		}
		actor, err := r.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				names[id] = id
				continue
			}
			return nil, err
		}
		names[id] = actor.Name
	}
	return names, nil
}
