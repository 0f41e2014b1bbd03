package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// creates a new user repository
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

// creates the unique indexes the repository relies on
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels()); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	return nil
}

// inserts a new user and returns its hex id
func (r *Repository) Create(ctx context.Context, user *User) (string, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrEmailTaken
		}

		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	return user.ID.Hex(), nil
}

// finds a user by their hex id
func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	return r.findOne(ctx, filterByID(oid))
}

// finds a user by email
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, filterByEmail(email))
}

// finds a user matching either the email or the Google subject id
func (r *Repository) FindByEmailOrGoogleID(ctx context.Context, email, googleID string) (*User, error) {
	return r.findOne(ctx, filterByEmailOrGoogleID(email, googleID))
}

// sets the Google subject id on an existing account in a single $set
func (r *Repository) LinkGoogleID(ctx context.Context, id primitive.ObjectID, googleID string) error {
	res, err := r.coll.UpdateOne(ctx, filterByID(id), updateLinkGoogleID(googleID, time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("failed to link google id: %w", err)
	}

	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// returns every user without password hashes
func (r *Repository) List(ctx context.Context) ([]User, error) {
	cursor, err := r.coll.Find(ctx, filterAll(), options.Find().SetProjection(withoutPassword))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	list := []User{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return list, nil
}

// applies a partial update
func (r *Repository) Update(ctx context.Context, id string, fields UpdateFields) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.coll.UpdateOne(ctx, filterByID(oid), updateFields(fields, time.Now().UTC()))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}

		return fmt.Errorf("failed to update user: %w", err)
	}

	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// removes a user
func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, filterByID(oid))
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) findOne(ctx context.Context, filter any) (*User, error) {
	var user User

	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}
