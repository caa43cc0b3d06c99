// Package config centralises configuration parsing for the signup service.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress string
	StaticDir   string // Directory holding the bundled front-end assets.
	CORSOrigin  string
	LogLevel    string
	LogFormat   string // "json" or "console".
}

// Load reads environment variables into Config, applying sensible defaults for
// local dev. A .env file in the working directory is honoured when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddress: getEnv("HTTP_ADDRESS", ":8080"),
		StaticDir:   getEnv("STATIC_DIR", "web/static"),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:5173"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
