package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/bookhub/server/internal/auth"
	"codeberg.org/bookhub/server/internal/config"
	"codeberg.org/bookhub/server/internal/logger"
	"codeberg.org/bookhub/server/internal/validation"
)

// @title BookHub API
// @version 1.0
// @description REST API for a book catalog with user authentication
// @description
// @description Features:
// @description - Books, authors, publishers, contacts and reviews
// @description - Email/password registration and login with JWT
// @description - Google sign-in with account linking
// @description - Admin user management

// @contact.name API Support
// @contact.url https://codeberg.org/bookhub/server

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authenticated requests. Format: Bearer {token}

func main() {
	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Setup(cfg.Environment)
	logger.Info("starting bookhub server", "environment", cfg.Environment)

	validation.Register()

	// initialize OAuth providers
	if cfg.GoogleEnabled() {
		if err := auth.InitializeProviders(auth.ProviderConfig{
			ClientID:      cfg.GoogleClientID,
			ClientSecret:  cfg.GoogleClientSecret,
			CallbackURL:   cfg.GoogleCallbackURL,
			SessionSecret: cfg.SessionSecret,
			SecureCookie:  cfg.IsProduction(),
		}); err != nil {
			logger.Fatal("failed to initialize OAuth providers", "error", err)
		}
	} else {
		logger.Warn("google sign-in disabled, GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET not set")
	}

	// create server with all dependencies
	srv, err := NewServer(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port, "docs", "/api-docs/index.html")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// close database connection
	if err := srv.store.Close(ctx); err != nil {
		logger.ErrorErr(err, "failed to close mongodb connection")
	}

	logger.Info("server stopped")
}
