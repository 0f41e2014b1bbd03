package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testNS = "bookhub.users"

func userDoc(id primitive.ObjectID, email, googleID string) bson.D {
	doc := bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Jane"},
		{Key: "email", Value: email},
		{Key: "password", Value: "$2a$10$hash"},
		{Key: "role", Value: "user"},
		{Key: "createdAt", Value: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
	}

	if googleID != "" {
		doc = append(doc, bson.E{Key: "googleId", Value: googleID})
	}

	return doc
}

func TestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns id and timestamp", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &User{Name: "Jane", Email: "jane@x.com", Role: "user"}
		id, err := repo.Create(ctx, user)

		require.NoError(mt, err)
		assert.Equal(mt, user.ID.Hex(), id)
		assert.False(mt, user.CreatedAt.IsZero())
	})

	mt.Run("create maps duplicate key to ErrEmailTaken", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: bookhub.users index: email_unique",
		}))

		_, err := repo.Create(ctx, &User{Name: "Jane", Email: "jane@x.com", Role: "user"})
		assert.ErrorIs(mt, err, ErrEmailTaken)
	})

	mt.Run("find by email decodes the document", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch, userDoc(id, "jane@x.com", "")))

		user, err := repo.FindByEmail(ctx, "jane@x.com")

		require.NoError(mt, err)
		assert.Equal(mt, id, user.ID)
		assert.Equal(mt, "Jane", user.Name)
		assert.Equal(mt, "$2a$10$hash", user.Password)
		assert.Empty(mt, user.GoogleID)
	})

	mt.Run("find by email returns ErrNotFound on empty result", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch))

		_, err := repo.FindByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("find by email or google id", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch, userDoc(id, "jane@x.com", "g-123")))

		user, err := repo.FindByEmailOrGoogleID(ctx, "other@x.com", "g-123")

		require.NoError(mt, err)
		assert.Equal(mt, "g-123", user.GoogleID)
	})

	mt.Run("find by id rejects malformed ids without a query", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}

		_, err := repo.FindByID(ctx, "not-an-id")
		assert.ErrorIs(mt, err, ErrInvalidID)
	})

	mt.Run("link google id", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := repo.LinkGoogleID(ctx, primitive.NewObjectID(), "g-123")
		assert.NoError(mt, err)
	})

	mt.Run("link google id on missing user", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.LinkGoogleID(ctx, primitive.NewObjectID(), "g-123")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("list returns all users", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch,
			userDoc(primitive.NewObjectID(), "a@x.com", ""),
			userDoc(primitive.NewObjectID(), "b@x.com", "g-1"),
		))

		list, err := repo.List(ctx)

		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.Equal(mt, "a@x.com", list[0].Email)
		assert.Equal(mt, "b@x.com", list[1].Email)
	})

	mt.Run("list returns empty slice", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch))

		list, err := repo.List(ctx)

		require.NoError(mt, err)
		assert.NotNil(mt, list)
		assert.Empty(mt, list)
	})

	mt.Run("update missing user", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		name := "New"
		err := repo.Update(ctx, primitive.NewObjectID().Hex(), UpdateFields{Name: &name})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		err := repo.Delete(ctx, primitive.NewObjectID().Hex())
		assert.NoError(mt, err)
	})

	mt.Run("delete missing user", func(mt *mtest.T) {
		repo := &Repository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestUpdateFields(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	name := "Jane"
	hash := "$2a$10$hash"

	update := updateFields(UpdateFields{Name: &name, Password: &hash}, now)

	set, ok := update[0].Value.(bson.D)
	require.True(t, ok)

	assert.Equal(t, bson.D{
		{Key: "name", Value: "Jane"},
		{Key: "password", Value: "$2a$10$hash"},
		{Key: "updatedAt", Value: now},
	}, set)

	assert.True(t, UpdateFields{}.IsEmpty())
	assert.False(t, UpdateFields{Name: &name}.IsEmpty())
}
