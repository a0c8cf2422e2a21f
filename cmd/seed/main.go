// Command seed resets the subscribers collection to a fixed dataset: it
// clears every document, then bulk-inserts the seed records. The two steps
// are not atomic — standalone mongod has no multi-document transactions — so
// a failure mid-insert leaves the collection holding only the records
// written before the failure. Any error aborts the run with a non-zero exit.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/channelhub/subscribers-api/internal/config"
	"github.com/channelhub/subscribers-api/internal/domain"
	"github.com/channelhub/subscribers-api/internal/store"
)

var seedSubscribers = []domain.CreateSubscriberRequest{
	{Name: "Jeff Bezos", SubscribedChannel: "Free Code Camp"},
	{Name: "John Smith", SubscribedChannel: "Cooking Blog"},
	{Name: "Lorenzo Lamas", SubscribedChannel: "Free Code Camp"},
	{Name: "Raphael Smith", SubscribedChannel: "Movie Reviews"},
	{Name: "Bill Gates", SubscribedChannel: "Free Code Camp"},
	{Name: "Jeanette MacDonald", SubscribedChannel: "Classic Films"},
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoStore, err := store.NewMongo(ctx, cfg.MongoURL)
	if err != nil {
		logger.Error("failed to connect to mongo", "error", err)
		os.Exit(1)
	}

	if err := mongoStore.Ping(ctx); err != nil {
		logger.Error("mongo not reachable", "error", err)
		os.Exit(1)
	}

	if err := mongoStore.ClearSubscribers(ctx); err != nil {
		logger.Error("failed to clear subscribers", "error", err)
		os.Exit(1)
	}

	inserted, err := mongoStore.InsertSubscribers(ctx, seedSubscribers)
	if err != nil {
		logger.Error("failed to insert seed data", "error", err)
		os.Exit(1)
	}

	if err := mongoStore.Close(ctx); err != nil {
		logger.Error("failed to disconnect", "error", err)
		os.Exit(1)
	}

	logger.Info("seeding complete", "inserted", inserted)
}
