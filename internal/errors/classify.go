package errors

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// error categories attached to server-side logs
const (
	CategoryDatabase = "database"
	CategoryNetwork  = "network"
	CategoryNotFound = "not_found"
	CategoryTimeout  = "timeout"
	CategoryAuth     = "auth"
	CategoryUnknown  = "unknown"
)

// analyzes an error and returns the category used for logging
func classifyError(err error) errorInfo {
	if err == nil {
		return errorInfo{CategoryUnknown}
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return errorInfo{CategoryNotFound}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || mongo.IsTimeout(err) {
		return errorInfo{CategoryTimeout}
	}

	if mongo.IsNetworkError(err) {
		return errorInfo{CategoryNetwork}
	}

	var cmdErr mongo.CommandError
	var writeErr mongo.WriteException
	if errors.As(err, &cmdErr) || errors.As(err, &writeErr) {
		return errorInfo{CategoryDatabase}
	}

	// fallback to string matching for wrapped third-party errors
	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "mongo") || strings.Contains(errMsg, "database"):
		return errorInfo{CategoryDatabase}
	case strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "dial"):
		return errorInfo{CategoryNetwork}
	case strings.Contains(errMsg, "token") || strings.Contains(errMsg, "oauth"):
		return errorInfo{CategoryAuth}
	}

	return errorInfo{CategoryUnknown}
}
