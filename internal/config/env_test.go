package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "bookhub_test")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestParse_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.False(t, cfg.GoogleEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestParse_MissingRequired(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_NAME", "bookhub_test")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Parse()
	assert.Error(t, err)
}

func TestParse_GoogleRequiresSessionSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("SESSION_SECRET", "")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")

	t.Setenv("SESSION_SECRET", "session-secret")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.True(t, cfg.GoogleEnabled())
}

func TestParse_GoogleCredentialsMustBePaired(t *testing.T) {
	setRequired(t)
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")

	_, err := Parse()
	assert.Error(t, err)
}

func TestParse_TrimsFrontendURL(t *testing.T) {
	setRequired(t)
	t.Setenv("FRONTEND_URL", "https://bookhub.example/")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "https://bookhub.example", cfg.FrontendURL)
}

func TestParse_RejectsBadBcryptCost(t *testing.T) {
	setRequired(t)
	t.Setenv("BCRYPT_COST", "2")

	_, err := Parse()
	assert.Error(t, err)
}
