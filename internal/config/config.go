package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultJWTSecret is the development placeholder. Load refuses it when
// ENV is "prod".
const DefaultJWTSecret = "your-secret-key-change-this-in-production"

type Config struct {
	Port string

	JWTSecret string

	// JWTExpireHours is the token lifetime in hours (default 168, i.e. 7 days). Set via JWT_EXPIRE_HOURS.
	JWTExpireHours int

	// Env is "dev" (default) or "prod". When "prod", JWT_SECRET must be set and not the
	// default, and the init-admin bootstrap endpoint is disabled.
	Env string

	// TLSCertFile and TLSKeyFile enable HTTPS when both are set.
	// When empty, the API listens with plain HTTP.
	TLSCertFile string
	TLSKeyFile  string

	// LogFormat is "text" (default) or "json" for structured logging.
	LogFormat string

	// MaxBodyBytes limits request body size; 0 uses the middleware default (1 MiB).
	MaxBodyBytes int64

	// CORSAllowedOrigins is a list of origins allowed for CORS (e.g. https://app.example.com, http://localhost:3000).
	// Set via CORS_ALLOWED_ORIGINS (comma-separated). When empty, no CORS headers are sent (same-origin only).
	CORSAllowedOrigins []string
}

func Load() (Config, error) {
	cfg := Config{
		Port: getEnv("PORT", "3001"),

		JWTSecret:      getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 168),
		Env:            getEnv("ENV", "dev"),

		// Optional TLS configuration for HTTPS.
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),

		LogFormat: getEnv("LOG_FORMAT", "text"),

		MaxBodyBytes: int64(getEnvInt("MAX_BODY_BYTES", 0)),

		CORSAllowedOrigins: parseCORSOrigins(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}

	if cfg.IsProd() && cfg.JWTSecret == DefaultJWTSecret {
		return Config{}, fmt.Errorf("ENV=prod requires JWT_SECRET to be set to a non-default value")
	}

	return cfg, nil
}

// IsProd reports whether the process runs with the production guard on.
func (c Config) IsProd() bool {
	return c.Env == "prod"
}

// parseCORSOrigins splits a comma-separated list of origins and trims spaces. Empty strings are omitted.
func parseCORSOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
