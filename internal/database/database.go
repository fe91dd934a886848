package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/store"
)

// Connect opens a Mongo connection and wraps the named database in the
// store contract. Close releases the client when the process shuts down.
func Connect(ctx context.Context, uri, dbName string) (store.Database, func(context.Context) error, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return store.NewMongoDatabase(client.Database(dbName)), client.Disconnect, nil
}
