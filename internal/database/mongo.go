// server/internal/database/mongo.go
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dc-directory-api-server/config"
	"dc-directory-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Connect opens a client and checks the server is reachable.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	if cfg.URI == "" || cfg.DBName == "" {
		return nil, errors.New("mongo uri and dbName are required for the mongo catalog source")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// LoadCollection reads every data center document in natural order. The
// directory is only read from Mongo; edits stay in memory.
func LoadCollection(ctx context.Context, coll *mongo.Collection) ([]models.DataCenter, error) {
	cursor, err := coll.Find(ctx, bson.D{}, options.Find().SetProjection(bson.M{"_id": 0}))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	records := []models.DataCenter{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return records, nil
}
