package main

import (
	"net/http"

	_ "codeberg.org/bookhub/server/docs"

	authrest "codeberg.org/bookhub/server/api/rest/auth"
	"codeberg.org/bookhub/server/api/rest/catalog"
	"codeberg.org/bookhub/server/api/rest/health"
	"codeberg.org/bookhub/server/api/rest/users"
	"codeberg.org/bookhub/server/internal/auth"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.GET("/", health.WelcomeHandler)
	router.GET("/health", health.Handler(server.store))

	router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
	})
	router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		authrest.RegisterRoutes(api, server.identity, server.tokens, authrest.Options{
			GoogleEnabled: server.config.GoogleEnabled(),
			FrontendURL:   server.config.FrontendURL,
		})

		users.RegisterRoutes(api, server.userRepo, server.hasher, server.tokens)
		catalog.RegisterRoutes(api, server.store.Database(), auth.AuthMiddleware(server.tokens))
	}
}
