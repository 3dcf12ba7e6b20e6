package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string
	SetsFile    string
	StaticDir   string
}

// Load reads configuration from the environment, loading a .env file first
// if one is present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[INFO] No .env file found, using environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "8000"),
		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqModel:   getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		SetsFile:    getEnv("SETS_FILE", "data/sets.json"),
		StaticDir:   os.Getenv("STATIC_DIR"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
