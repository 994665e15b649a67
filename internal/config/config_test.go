package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the given keys for the test, restoring them afterwards.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "") // registers restore
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, "PORT", "ENVIRONMENT", "FORCE_SECURE_COOKIES", "CORS_ALLOWED_ORIGINS")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.ForceSecureCookies)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoad_MissingSecretsIsNotFatal(t *testing.T) {
	// Missing credentials fail closed per operation, not at startup, and a
	// missing database URL still lets public reads serve the fallback.
	clearEnv(t, "ADMIN_JWT_SECRET", "ADMIN_USERNAME", "ADMIN_PASSWORD", "DATABASE_URL", "POSTGRES_URL")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.AdminJWTSecret)
	assert.Empty(t, cfg.AdminUsername)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("ADMIN_JWT_SECRET", "s3cret")
	t.Setenv("FORCE_SECURE_COOKIES", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://u:p@localhost/db", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.AdminJWTSecret)
	assert.True(t, cfg.ForceSecureCookies)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_PostgresURLFallback(t *testing.T) {
	clearEnv(t, "DATABASE_URL")
	t.Setenv("POSTGRES_URL", "postgres://u:p@fallback/db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@fallback/db", cfg.DatabaseURL)
}
