package users

import (
	"codeberg.org/bookhub/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers the admin user routes behind bearer auth and the admin role
func RegisterRoutes(router *gin.RouterGroup, store UserStore, hasher PasswordHasher, verifier auth.TokenVerifier) {
	usersGroup := router.Group("/users")
	usersGroup.Use(auth.AuthMiddleware(verifier), auth.RequireRole(auth.RoleAdmin))
	{
		usersGroup.GET("", ListUsersHandler(store))
		usersGroup.GET("/:id", GetUserHandler(store))
		usersGroup.POST("", CreateUserHandler(store, hasher))
		usersGroup.PUT("/:id", UpdateUserHandler(store, hasher))
		usersGroup.DELETE("/:id", DeleteUserHandler(store))
	}
}
