package errors

import (
	"net/http"

	"codeberg.org/bookhub/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc.
//     These functions handle both logging and the HTTP response
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For services/repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the handler decide how to log and respond

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request."
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// returns a 400 error listing each failed field rule
func ValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error:   "Validation failed.",
		Details: ValidationMessages(err),
	})
}

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required."
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: message})
}

// returns a 403 forbidden error
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Insufficient permissions."
	}

	c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: message})
}

// returns a 404 not found error
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found."
	}

	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// returns a 503 error for features disabled by configuration
func Unavailable(c *gin.Context, message string) {
	if message == "" {
		message = "Service unavailable."
	}

	c.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorResponse{Error: message})
}

// logs the full error server-side and returns a generic 500
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "Internal server error."
	}

	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"category", classifyError(err).category,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}
