package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid document id")
)

// Fields is a partial update applied with $set.
type Fields map[string]any

// reports whether id is a 24-character hex ObjectID
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// list/get/create/update/delete over one named collection
type Repository[T any] struct {
	coll *mongo.Collection
}

func NewRepository[T any](db *mongo.Database, collection string) *Repository[T] {
	return &Repository[T]{coll: db.Collection(collection)}
}

// returns every document in the collection
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.coll.Name(), err)
	}

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.coll.Name(), err)
	}

	return items, nil
}

// returns one document by hex id
func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var item T
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to find %s document: %w", r.coll.Name(), err)
	}

	return &item, nil
}

// inserts doc and returns the generated hex id
func (r *Repository[T]) Create(ctx context.Context, doc T) (string, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert %s document: %w", r.coll.Name(), err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return oid.Hex(), nil
}

// sets fields on one document and stamps updatedAt
func (r *Repository[T]) Update(ctx context.Context, id string, fields Fields) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["updatedAt"] = time.Now().UTC()

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return fmt.Errorf("failed to update %s document: %w", r.coll.Name(), err)
	}

	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// deletes one document by hex id
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("failed to delete %s document: %w", r.coll.Name(), err)
	}

	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// inserts docs in one batch and returns how many were written
func (r *Repository[T]) InsertMany(ctx context.Context, docs []T) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	batch := make([]any, len(docs))
	for i := range docs {
		batch[i] = docs[i]
	}

	res, err := r.coll.InsertMany(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s documents: %w", r.coll.Name(), err)
	}

	return len(res.InsertedIDs), nil
}

// returns the number of documents in the collection
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.coll.Name(), err)
	}

	return n, nil
}
