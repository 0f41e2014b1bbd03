package users

import (
	"context"

	"codeberg.org/bookhub/server/bookhub/users"
)

// persistence used by the admin handlers; satisfied by *users.Repository
type UserStore interface {
	List(ctx context.Context) ([]users.User, error)
	FindByID(ctx context.Context, id string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	Create(ctx context.Context, user *users.User) (string, error)
	Update(ctx context.Context, id string, fields users.UpdateFields) error
	Delete(ctx context.Context, id string) error
}

type PasswordHasher interface {
	Hash(secret string) (string, error)
}

// CreateUserRequest for admin account creation
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,notblank,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

// UpdateUserRequest for partial admin updates; omitted fields are unchanged
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,notblank,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=1,max=72"`
	Role     *string `json:"role" binding:"omitempty,oneof=user admin"`
}

// CreateUserResponse returned after an admin creates an account
type CreateUserResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
