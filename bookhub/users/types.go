package users

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrInvalidID  = errors.New("invalid user id")
	ErrEmailTaken = errors.New("email already registered")
)

// handles user database operations
type Repository struct {
	coll *mongo.Collection
}

// represents an account in the users collection
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	GoogleID  string             `bson:"googleId,omitempty" json:"googleId,omitempty"`
	Provider  string             `bson:"provider,omitempty" json:"provider,omitempty"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// hex form of the object id
func (u *User) IDHex() string {
	return u.ID.Hex()
}

// contains fields the admin update path may change; nil means unchanged
type UpdateFields struct {
	Name     *string
	Email    *string
	Role     *string
	Password *string // already hashed
}

func (f UpdateFields) IsEmpty() bool {
	return f.Name == nil && f.Email == nil && f.Role == nil && f.Password == nil
}
