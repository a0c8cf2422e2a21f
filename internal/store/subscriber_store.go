package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/channelhub/subscribers-api/internal/domain"
)

// Subscribers is the persistence surface the HTTP handlers depend on.
// Handlers take the interface so tests can substitute an in-memory store.
type Subscribers interface {
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	ListSubscriberNames(ctx context.Context) ([]domain.SubscriberName, error)
	GetSubscriber(ctx context.Context, id string) (*domain.Subscriber, error)
	CreateSubscriber(ctx context.Context, req domain.CreateSubscriberRequest) (*domain.Subscriber, error)
}

func (s *MongoStore) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("querying subscribers: %w", err)
	}
	defer cursor.Close(ctx)

	subscribers := []domain.Subscriber{}
	if err := cursor.All(ctx, &subscribers); err != nil {
		return nil, fmt.Errorf("decoding subscribers: %w", err)
	}

	return subscribers, nil
}

func (s *MongoStore) ListSubscriberNames(ctx context.Context) ([]domain.SubscriberName, error) {
	projection := options.Find().SetProjection(bson.M{
		"_id":               0,
		"name":              1,
		"subscribedChannel": 1,
	})

	cursor, err := s.collection.Find(ctx, bson.M{}, projection)
	if err != nil {
		return nil, fmt.Errorf("querying subscriber names: %w", err)
	}
	defer cursor.Close(ctx)

	names := []domain.SubscriberName{}
	if err := cursor.All(ctx, &names); err != nil {
		return nil, fmt.Errorf("decoding subscriber names: %w", err)
	}

	return names, nil
}

// GetSubscriber returns (nil, nil) when no document matches or when id is not
// a well-formed ObjectID; an error is returned only on an unexpected query
// failure.
func (s *MongoStore) GetSubscriber(ctx context.Context, id string) (*domain.Subscriber, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var sub domain.Subscriber
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying subscriber: %w", err)
	}

	return &sub, nil
}

// CreateSubscriber validates presence of both fields before touching the
// store; ErrMissingFields means nothing was persisted.
func (s *MongoStore) CreateSubscriber(ctx context.Context, req domain.CreateSubscriberRequest) (*domain.Subscriber, error) {
	if req.Name == "" || req.SubscribedChannel == "" {
		return nil, ErrMissingFields
	}

	res, err := s.collection.InsertOne(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("inserting subscriber: %w", err)
	}

	return &domain.Subscriber{
		ID:                res.InsertedID.(primitive.ObjectID),
		Name:              req.Name,
		SubscribedChannel: req.SubscribedChannel,
	}, nil
}

// ClearSubscribers deletes every document in the collection. Seeding only.
func (s *MongoStore) ClearSubscribers(ctx context.Context) error {
	if _, err := s.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clearing subscribers: %w", err)
	}
	return nil
}

// InsertSubscribers bulk-inserts the given records and reports how many were
// written. Seeding only.
func (s *MongoStore) InsertSubscribers(ctx context.Context, records []domain.CreateSubscriberRequest) (int, error) {
	docs := make([]interface{}, 0, len(records))
	for _, r := range records {
		docs = append(docs, r)
	}

	res, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("inserting subscribers: %w", err)
	}

	return len(res.InsertedIDs), nil
}
