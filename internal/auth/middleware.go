package auth

import (
	"context"
	"strings"

	"codeberg.org/bookhub/server/internal/errors"
	"codeberg.org/bookhub/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// client-facing middleware messages
const (
	MsgHeaderMissing = "Authorization header missing."
	MsgTokenMissing  = "Token not provided."
	MsgTokenInvalid  = "Invalid or expired token."
	MsgForbiddenRole = "Insufficient permissions."
)

const (
	contextClaimsKey = "auth_claims"
	contextUserIDKey = "user_id"
	contextEmailKey  = "user_email"
	contextRoleKey   = "user_role"
)

// verifies bearer tokens; implemented by TokenService
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// validates JWT tokens and adds user info to context
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.Unauthorized(c, MsgHeaderMissing)
			return
		}

		scheme, token, _ := strings.Cut(strings.TrimSpace(authHeader), " ")
		token = strings.TrimSpace(token)

		if token == "" {
			errors.Unauthorized(c, MsgTokenMissing)
			return
		}

		if !strings.EqualFold(scheme, "Bearer") {
			errors.Unauthorized(c, MsgTokenInvalid)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			logger.FromContext(c.Request.Context()).Debug("rejected bearer token", "reason", err)
			errors.Unauthorized(c, MsgTokenInvalid)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// rejects authenticated callers whose role differs from role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		if claims.Role != role {
			errors.Forbidden(c, MsgForbiddenRole)
			return
		}

		c.Next()
	}
}

func setClaims(c *gin.Context, claims *Claims) {
	c.Set(contextClaimsKey, claims)
	c.Set(contextUserIDKey, claims.UserID)
	c.Set(contextEmailKey, claims.Email)
	c.Set(contextRoleKey, claims.Role)

	c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(contextUserIDKey)
	return userID, userID != ""
}

// extracts the decoded claims after AuthMiddleware
func GetClaims(c *gin.Context) (*Claims, bool) {
	v, exists := c.Get(contextClaimsKey)
	if !exists {
		return nil, false
	}

	claims, ok := v.(*Claims)
	return claims, ok
}

type claimsKey struct{}

// attaches claims to a standard context for code outside gin handlers
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok
}
