package auth

import (
	"codeberg.org/bookhub/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, svc IdentityService, verifier auth.TokenVerifier, opts Options) {
	requireAuth := auth.AuthMiddleware(verifier)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", RegisterHandler(svc))
		authGroup.POST("/login", LoginHandler(svc))
		authGroup.POST("/logout", requireAuth, LogoutHandler())
		authGroup.GET("/profile", requireAuth, ProfileHandler(svc))

		authGroup.GET("/google", BeginGoogleHandler(opts))
		authGroup.GET("/google/callback", GoogleCallbackHandler(svc, opts))
		authGroup.GET("/google/failure", GoogleFailureHandler())
	}
}
