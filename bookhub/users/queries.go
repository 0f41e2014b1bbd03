package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "users"

// the password hash never leaves the repository on listing paths
var withoutPassword = bson.D{{Key: "password", Value: 0}}

func filterAll() bson.D {
	return bson.D{}
}

func filterByID(id primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

func filterByEmail(email string) bson.D {
	return bson.D{{Key: "email", Value: email}}
}

func filterByEmailOrGoogleID(email, googleID string) bson.D {
	return bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "googleId", Value: googleID}},
	}}}
}

func updateLinkGoogleID(googleID string, now time.Time) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{
		{Key: "googleId", Value: googleID},
		{Key: "updatedAt", Value: now},
	}}}
}

func updateFields(f UpdateFields, now time.Time) bson.D {
	set := bson.D{}

	if f.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *f.Name})
	}

	if f.Email != nil {
		set = append(set, bson.E{Key: "email", Value: *f.Email})
	}

	if f.Role != nil {
		set = append(set, bson.E{Key: "role", Value: *f.Role})
	}

	if f.Password != nil {
		set = append(set, bson.E{Key: "password", Value: *f.Password})
	}

	set = append(set, bson.E{Key: "updatedAt", Value: now})

	return bson.D{{Key: "$set", Value: set}}
}

// unique email closes the check-then-insert race on registration;
// googleId is sparse because password-only accounts never set it
func indexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "googleId", Value: 1}},
			Options: options.Index().SetName("google_id_unique").SetUnique(true).SetSparse(true),
		},
	}
}
