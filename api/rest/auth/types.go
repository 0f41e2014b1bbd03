package auth

import (
	"context"

	"codeberg.org/bookhub/server/bookhub/identity"
)

// local and federated flows consumed by the handlers; satisfied by *identity.Service
type IdentityService interface {
	Register(ctx context.Context, reg identity.Registration) (string, error)
	Login(ctx context.Context, email, password string) (*identity.LoginResult, error)
	Profile(ctx context.Context, userID string) (*identity.Profile, error)
	CompleteGoogleLogin(ctx context.Context, profile identity.GoogleProfile) (*identity.LoginResult, identity.Outcome, error)
}

// Options controls the Google sign-in routes.
type Options struct {
	GoogleEnabled bool
	FrontendURL   string
}

// RegisterRequest for local account creation
type RegisterRequest struct {
	Name     string `json:"name" binding:"omitempty,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest for email/password login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse returned after a successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// AuthResponse returned after a successful login
type AuthResponse struct {
	Message string               `json:"message"`
	Token   string               `json:"token"`
	User    identity.UserSummary `json:"user"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
