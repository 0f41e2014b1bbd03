package health

import (
	"context"
	"net/http"

	"codeberg.org/bookhub/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	serviceName = "bookhub"
	version     = "1.0.0"
)

// checks database reachability; implemented by *storage.Client
type Pinger interface {
	Ping(ctx context.Context) error
}

// Response represents the health check response
type Response struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database"`
}

// WelcomeResponse is served at the API root
type WelcomeResponse struct {
	Message string `json:"message"`
}

// Handler godoc
// @Summary Health check
// @Description Reports service status and database reachability
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := Response{
			Status:   "healthy",
			Service:  serviceName,
			Version:  version,
			Database: "connected",
		}

		if err := db.Ping(c.Request.Context()); err != nil {
			logger.FromContext(c.Request.Context()).Warn("database ping failed", "error", err)

			resp.Status = "degraded"
			resp.Database = "unreachable"
		}

		c.JSON(http.StatusOK, resp)
	}
}

// WelcomeHandler godoc
// @Summary API root
// @Tags health
// @Produce json
// @Success 200 {object} WelcomeResponse
// @Router / [get]
func WelcomeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeResponse{Message: "Welcome to BookHub API"})
}
