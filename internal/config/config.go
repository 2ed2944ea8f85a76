package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr = ":8080"
	defaultDatabase = "projects/test-project/instances/emulator-instance/databases/pricing-db"
)

// Config holds service configuration sourced from environment variables.
type Config struct {
	HTTPAddr        string
	SpannerDatabase string
	Env             string
}

// Load reads the environment and returns a populated Config. A local
// .env file is loaded best-effort for development; production relies on
// real env injection.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg := Config{
		HTTPAddr:        os.Getenv("HTTP_ADDR"),
		SpannerDatabase: os.Getenv("SPANNER_DATABASE"),
		Env:             os.Getenv("APP_ENV"),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}
	if cfg.SpannerDatabase == "" {
		cfg.SpannerDatabase = defaultDatabase
		log.Printf("warning: SPANNER_DATABASE is not set, using %s", defaultDatabase)
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	return cfg
}

// IsDev reports whether the service runs in development mode.
func (c Config) IsDev() bool {
	return c.Env == "development"
}
