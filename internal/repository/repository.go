// Package repository provides a generic MongoDB repository. Each entity type
// gets its own instance instead of its own copy of the CRUD code; validation
// stays in the API payloads.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "portfolio-backend/pkg/errors"
)

// Repository is a generic document repository for one collection.
type Repository[T any] struct {
	col    *mongo.Collection
	entity string
}

// New builds a repository over the given collection. The entity name is used
// in not-found messages ("projet", "skill", ...).
func New[T any](db *mongo.Database, collection, entity string) *Repository[T] {
	return &Repository[T]{
		col:    db.Collection(collection),
		entity: entity,
	}
}

// ObjectIDFromHex parses a client-supplied id into the store-native key.
func ObjectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewInvalidID(id)
	}
	return oid, nil
}

// List returns every document in the collection.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewStoreOperationFailed(r.col.Name(), "find", err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.NewStoreOperationFailed(r.col.Name(), "decode", err)
	}
	return docs, nil
}

// Get fetches one document by its hex id.
func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var doc T
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound(r.entity, id)
		}
		return nil, apperrors.NewStoreOperationFailed(r.col.Name(), "find_one", err)
	}
	return &doc, nil
}

// FindByIDs fetches the documents whose ids appear in the given list. Ids
// that do not parse are skipped; the graph may reference entities that were
// deleted since the edge was created.
func (r *Repository[T]) FindByIDs(ctx context.Context, ids []string) ([]T, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}

	docs := []T{}
	if len(oids) == 0 {
		return docs, nil
	}

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, apperrors.NewStoreOperationFailed(r.col.Name(), "find", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.NewStoreOperationFailed(r.col.Name(), "decode", err)
	}
	return docs, nil
}

// Insert stores a new document and returns its hex id.
func (r *Repository[T]) Insert(ctx context.Context, doc any) (string, error) {
	result, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", apperrors.NewStoreOperationFailed(r.col.Name(), "insert_one", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", apperrors.NewStoreOperationFailed(r.col.Name(), "insert_one", errors.New("inserted id is not an ObjectID"))
	}
	return oid.Hex(), nil
}

// Update applies a partial $set to one document. An empty set is a no-op; the
// caller is expected to re-fetch for the response body.
func (r *Repository[T]) Update(ctx context.Context, id string, set bson.M) error {
	oid, err := ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	if len(set) == 0 {
		return nil
	}

	if _, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set}); err != nil {
		return apperrors.NewStoreOperationFailed(r.col.Name(), "update_one", err)
	}
	return nil
}

// Delete removes one document; deleting a missing document is a not-found.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	oid, err := ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.NewStoreOperationFailed(r.col.Name(), "delete_one", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFound(r.entity, id)
	}
	return nil
}

// Count returns the number of documents in the collection.
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperrors.NewStoreOperationFailed(r.col.Name(), "count", err)
	}
	return n, nil
}
