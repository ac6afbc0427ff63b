package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port             string
	AWSRegion        string
	JWTSecret        string
	OpenRouterAPIKey string
	Judge0APIKey     string
	ResumeBucket     string
}

// Load reads configuration from environment variables, loading .env first if present
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment values")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-me"),
		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", os.Getenv("OPENAI_API_KEY")),
		Judge0APIKey:     getEnv("JUDGE0_API_KEY", ""),
		ResumeBucket:     getEnv("RESUME_BUCKET", "skillforge-resumes"),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
