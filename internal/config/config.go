package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Mentor defaults
	DefaultGoal float64
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "mentor"),
		DBPassword: getEnv("DB_PASSWORD", "mentor"),
		DBName:     getEnv("DB_NAME", "mentor"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Default savings goal used when the caller does not supply one.
	config.DefaultGoal = 100000
	if raw := os.Getenv("MENTOR_DEFAULT_GOAL"); raw != "" {
		goal, err := strconv.ParseFloat(raw, 64)
		if err != nil || goal <= 0 {
			log.Printf("Warning: invalid MENTOR_DEFAULT_GOAL value '%s', falling back to 100000\n", raw)
		} else {
			config.DefaultGoal = goal
		}
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
