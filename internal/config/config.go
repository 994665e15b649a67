package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabaseURL string

	// Admin session
	AdminJWTSecret string
	AdminUsername  string
	AdminPassword  string

	// Cookies are marked Secure when the edge proxy says https; this flag is
	// the fallback for deployments without X-Forwarded-Proto.
	ForceSecureCookies bool

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from the environment. Secrets and the database
// URL are deliberately not validated here: a missing secret fails the
// login/session operations (surfaced as 500), and a missing or broken
// database URL still lets public reads serve the bundled fallback.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		DatabaseURL:        getEnv("DATABASE_URL", getEnv("POSTGRES_URL", "")),
		AdminJWTSecret:     getEnv("ADMIN_JWT_SECRET", ""),
		AdminUsername:      getEnv("ADMIN_USERNAME", ""),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		ForceSecureCookies: getEnvBool("FORCE_SECURE_COOKIES", false),
		AllowedOrigins:     getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
