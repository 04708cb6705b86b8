package mongo

import (
	"context"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nahid-dev/portfolio-api/internal/errors"
)

// Collection exposes schemaless CRUD over a single document collection.
type Collection struct {
	coll *driver.Collection
}

// parseId converts a hex identifier into the store's native reference type.
func parseId(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.New(fmt.Sprintf("invalid id %q", id), http.StatusBadRequest)
	}
	return oid, nil
}

func parseIds(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseId(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}

func (c *Collection) List(ctx context.Context) ([]bson.M, error) {
	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Collection) Insert(ctx context.Context, doc interface{}) (*driver.InsertOneResult, error) {
	return c.coll.InsertOne(ctx, doc)
}

// UpdateById applies a $set of fields to the document with the given id.
func (c *Collection) UpdateById(ctx context.Context, id string, fields bson.M, upsert bool) (*driver.UpdateResult, error) {
	oid, err := parseId(id)
	if err != nil {
		return nil, err
	}
	return c.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.Update().SetUpsert(upsert),
	)
}

func (c *Collection) DeleteById(ctx context.Context, id string) (*driver.DeleteResult, error) {
	oid, err := parseId(id)
	if err != nil {
		return nil, err
	}
	return c.coll.DeleteOne(ctx, bson.M{"_id": oid})
}

// DeleteByIds removes every document whose id appears in ids.
// Deletion by id is idempotent: already-removed ids are no-ops.
func (c *Collection) DeleteByIds(ctx context.Context, ids []string) (*driver.DeleteResult, error) {
	oids, err := parseIds(ids)
	if err != nil {
		return nil, err
	}
	return c.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (c *Collection) EstimatedCount(ctx context.Context) (int64, error) {
	return c.coll.EstimatedDocumentCount(ctx)
}
