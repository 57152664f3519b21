package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	ActorTimeout    time.Duration
	ShutdownTimeout time.Duration
	Env             string
	LogLevel        string
}

// Load reads an optional .env file and returns the configuration with
// defaults applied for anything unset.
func Load() *Config {
	// A missing .env file is fine; system env vars still apply.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		ActorTimeout:    getDuration("ACTOR_TIMEOUT", time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
