package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultPort     = "3000"
	defaultMongoURL = "mongodb://localhost:27017/subscribers"
)

// Config holds all configuration for the application.
type Config struct {
	Port     string
	MongoURL string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present. Every variable has a default; the service starts with
// no arguments.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", defaultPort),
		MongoURL: getEnv("MONGO_URL", defaultMongoURL),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
