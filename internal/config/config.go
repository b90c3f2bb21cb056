package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL      string
	AppName          string
	Debug            bool
	LeaderboardLimit int
}

// Load reads configuration from .env and the environment. The database
// URL is optional: without one the arcade runs in guest mode and skips
// the leaderboard entirely.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading from environment")
	}

	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AppName:          getEnv("APP_NAME", "Blockfall"),
		Debug:            getEnvAsBool("DEBUG", false),
		LeaderboardLimit: getEnvAsInt("LEADERBOARD_LIMIT", 10),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
