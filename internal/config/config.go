package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all process-wide settings. It is built once in main and
// passed by pointer into the database layer, token service and handlers.
type Config struct {
	DatabaseURL        string
	SecretKey          string
	Algorithm          string
	TokenExpireMinutes int
	Port               string
}

// Load reads configuration from environment variables, falling back to
// development defaults where a value is not set.
func Load() *Config {
	cfg := &Config{
		DatabaseURL:        getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=postlink port=5432 sslmode=disable"),
		SecretKey:          getEnv("SECRET_KEY", "secret_key_change_me"),
		Algorithm:          getEnv("ALGORITHM", "HS256"),
		TokenExpireMinutes: 30,
		Port:               getEnv("PORT", "8080"),
	}

	if v := os.Getenv("TOKEN_EXPIRE_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("WARNING: invalid TOKEN_EXPIRE_MINUTES %q, using default %d", v, cfg.TokenExpireMinutes)
		} else {
			cfg.TokenExpireMinutes = minutes
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
