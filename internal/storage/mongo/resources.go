package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
)

// Generic document operations keyed by collection name.
// The router constrains which collection names can reach these.

func (s *Storage) ListDocuments(ctx context.Context, collection string) ([]bson.M, error) {
	return s.Collection(collection).List(ctx)
}

func (s *Storage) InsertDocument(ctx context.Context, collection string, doc bson.M) (*driver.InsertOneResult, error) {
	return s.Collection(collection).Insert(ctx, doc)
}

func (s *Storage) UpsertDocument(ctx context.Context, collection, id string, fields bson.M) (*driver.UpdateResult, error) {
	return s.Collection(collection).UpdateById(ctx, id, fields, true)
}

func (s *Storage) DeleteDocument(ctx context.Context, collection, id string) (*driver.DeleteResult, error) {
	return s.Collection(collection).DeleteById(ctx, id)
}
