package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const collectionName = "subscribers"

// MongoStore holds the single shared connection to the document store.
// The driver's client is safe for concurrent use, so one instance serves
// every in-flight request.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongo connects to the store at the given connection string and scopes
// the store to the subscribers collection of the URL's database.
func NewMongo(ctx context.Context, url string) (*MongoStore, error) {
	cs, err := connstring.ParseAndValidate(url)
	if err != nil {
		return nil, fmt.Errorf("parsing mongo url: %w", err)
	}

	dbName := cs.Database
	if dbName == "" {
		dbName = collectionName
	}

	opts := options.Client().
		ApplyURI(url).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(dbName).Collection(collectionName),
	}, nil
}

// Ping verifies the store is reachable. The server tolerates a failed ping
// at startup; requests simply fail until the store comes up.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close releases the connection.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
