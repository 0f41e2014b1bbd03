package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/bookhub/server/bookhub/identity"
	"codeberg.org/bookhub/server/bookhub/users"
	"codeberg.org/bookhub/server/internal/auth"
	"codeberg.org/bookhub/server/internal/config"
	"codeberg.org/bookhub/server/internal/logger"
	"codeberg.org/bookhub/server/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	store, err := storage.NewClient(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		return nil, err
	}

	logger.Info("connected to mongodb", "database", cfg.DBName)

	userRepo := users.NewRepository(store.Database())

	// unique email closes the check-then-insert race on registration
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		store.Close(context.Background()) //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, err
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		store.Close(context.Background()) //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), logger.Middleware(), CORSMiddleware())

	server := &Server{
		config:   cfg,
		store:    store,
		userRepo: userRepo,
		identity: identity.NewService(userRepo, hasher, tokens),
		tokens:   tokens,
		hasher:   hasher,
		router:   router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

// open policy: any origin may call the API with a bearer token
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		ExposeHeaders:   []string{logger.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	})
}
