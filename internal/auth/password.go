package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the work factor existing password hashes were created with.
const DefaultBcryptCost = 10

var ErrInvalidInput = errors.New("invalid input")

// hashes and verifies user passwords with bcrypt
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	return &PasswordHasher{cost: cost}
}

// returns a salted bcrypt hash of secret
func (h *PasswordHasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("empty password: %w", ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("password too long: %w", ErrInvalidInput)
		}

		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// reports whether secret matches hashed; malformed or empty hashes never match
func (h *PasswordHasher) Verify(secret, hashed string) bool {
	if secret == "" || hashed == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret)) == nil
}
