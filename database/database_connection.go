package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Mongo wraps the client and the application database so handlers receive an
// explicitly constructed handle instead of reaching for package globals.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	// Send a ping to confirm a successful connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Mongo{
		Client: client,
		DB:     client.Database(dbName),
	}, nil
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.DB.Collection(name)
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// EnsureIndexes creates the unique slug indexes. Slug uniqueness is enforced
// here rather than by an application-level check-then-insert, so a race
// between two creates with the same derived slug is resolved by the second
// write failing with a duplicate-key error.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	slugIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, name := range []string{"collections", "products"} {
		if _, err := m.Collection(name).Indexes().CreateOne(ctx, slugIndex); err != nil {
			return fmt.Errorf("ensure %s slug index: %w", name, err)
		}
	}
	return nil
}
