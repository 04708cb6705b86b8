package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type ResourcesService interface {
	List(ctx context.Context, collection string) ([]bson.M, error)
	Insert(ctx context.Context, collection string, doc bson.M) (*driver.InsertOneResult, error)
	Upsert(ctx context.Context, collection, id string, fields bson.M) (*driver.UpdateResult, error)
	Delete(ctx context.Context, collection, id string) (*driver.DeleteResult, error)
}

type ResourceStorage interface {
	ListDocuments(ctx context.Context, collection string) ([]bson.M, error)
	InsertDocument(ctx context.Context, collection string, doc bson.M) (*driver.InsertOneResult, error)
	UpsertDocument(ctx context.Context, collection, id string, fields bson.M) (*driver.UpdateResult, error)
	DeleteDocument(ctx context.Context, collection, id string) (*driver.DeleteResult, error)
}

// Resources is the pass-through CRUD service over the document collections.
// No schema validation on purpose: documents are free-form.
type Resources struct {
	storage ResourceStorage
}

func NewResources(storage ResourceStorage) *Resources {
	return &Resources{storage: storage}
}

func (s *Resources) List(ctx context.Context, collection string) ([]bson.M, error) {
	return s.storage.ListDocuments(ctx, collection)
}

func (s *Resources) Insert(ctx context.Context, collection string, doc bson.M) (*driver.InsertOneResult, error) {
	return s.storage.InsertDocument(ctx, collection, doc)
}

func (s *Resources) Upsert(ctx context.Context, collection, id string, fields bson.M) (*driver.UpdateResult, error) {
	return s.storage.UpsertDocument(ctx, collection, id, fields)
}

func (s *Resources) Delete(ctx context.Context, collection, id string) (*driver.DeleteResult, error) {
	return s.storage.DeleteDocument(ctx, collection, id)
}
