package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionGateway is the generic create/query capability shared by the
// concrete repositories. It performs no validation and no retries: callers
// hand it entities that already satisfy their schema, and any driver fault
// is returned as-is for the API boundary to surface.
type collectionGateway[T any] struct {
	collection *mongo.Collection
}

func newCollectionGateway[T any](db *mongo.Database, name string) collectionGateway[T] {
	return collectionGateway[T]{collection: db.Collection(name)}
}

// insertOne persists a single document and returns its generated ObjectID.
// Every call inserts a new document; there is no dedup or upsert.
func (g collectionGateway[T]) insertOne(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	result, err := g.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// find returns every document matching filter (all documents when filter is
// empty), truncated to limit when limit > 0. No sort is applied; ordering
// is the caller's responsibility. A query with no matches returns an empty
// slice, never an error.
func (g collectionGateway[T]) find(ctx context.Context, filter bson.M, limit int64) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	findOptions := options.Find()
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := g.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}
