package mongo

import (
	"context"
	"log"

	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the portfolio backend.
const (
	CollUsers    = "users"
	CollProjects = "projects"
	CollBlogs    = "blogs"
	CollCart     = "cart"
	CollPayments = "payments"
)

type Storage struct {
	client *driver.Client
	db     *driver.Database

	// atomicCheckout wraps the two checkout writes in a transaction.
	// Requires a replica set; disable against standalone deployments.
	atomicCheckout bool
}

func New(ctx context.Context, uri, dbName string, atomicCheckout bool) (*Storage, error) {
	log.Print("Connecting to db")
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := driver.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	log.Print("Succesfully connected to db")

	return &Storage{client: client, db: client.Database(dbName), atomicCheckout: atomicCheckout}, nil
}

func (s *Storage) Cleanup(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Collection wraps a named collection with the generic document operations.
func (s *Storage) Collection(name string) *Collection {
	return &Collection{coll: s.db.Collection(name)}
}
