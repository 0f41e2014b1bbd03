package auth

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
)

// ProviderGoogle is the goth provider name used in routes and queries.
const ProviderGoogle = "google"

// settings for the Google OAuth provider and its handshake cookie
type ProviderConfig struct {
	ClientID      string
	ClientSecret  string
	CallbackURL   string
	SessionSecret string
	SecureCookie  bool
}

// sets up the Google OAuth provider using goth
func InitializeProviders(cfg ProviderConfig) error {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	if cfg.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must be set")
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	// the cookie only carries OAuth state between redirect and callback
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	goth.UseProviders(
		google.New(
			cfg.ClientID,
			cfg.ClientSecret,
			cfg.CallbackURL,
			"email", "profile",
		),
	)

	return nil
}
