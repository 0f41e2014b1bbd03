package main

import (
	"codeberg.org/bookhub/server/bookhub/identity"
	"codeberg.org/bookhub/server/bookhub/users"
	"codeberg.org/bookhub/server/internal/auth"
	"codeberg.org/bookhub/server/internal/config"
	"codeberg.org/bookhub/server/internal/storage"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	store    *storage.Client
	userRepo *users.Repository
	identity *identity.Service
	tokens   *auth.TokenService
	hasher   *auth.PasswordHasher
	router   *gin.Engine
}
