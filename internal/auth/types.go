package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// user roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// represents JWT claims
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// reports whether role is one of the known roles
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
