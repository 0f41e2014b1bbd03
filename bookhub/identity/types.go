package identity

import (
	"context"
	"time"

	"codeberg.org/bookhub/server/bookhub/users"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// persistence the flows need; satisfied by *users.Repository
type UserStore interface {
	Create(ctx context.Context, user *users.User) (string, error)
	FindByID(ctx context.Context, id string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	FindByEmailOrGoogleID(ctx context.Context, email, googleID string) (*users.User, error)
	LinkGoogleID(ctx context.Context, id primitive.ObjectID, googleID string) error
}

type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hashed string) bool
}

type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
}

// input to Register
type Registration struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// non-sensitive profile fields returned alongside tokens
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// result of a successful local or federated login
type LoginResult struct {
	UserID string
	Token  string
	User   UserSummary
}

// profile of the authenticated user
type Profile struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// identity vouched for by Google
type GoogleProfile struct {
	ID    string
	Email string
	Name  string
}

// terminal state of a federated login
type Outcome int

const (
	OutcomeCreated Outcome = iota + 1
	OutcomeLinked
	OutcomeExisting
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeLinked:
		return "linked"
	case OutcomeExisting:
		return "existing"
	}

	return "unknown"
}
