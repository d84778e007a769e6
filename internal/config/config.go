package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP_ADDR     string
	STORE_PATH    string
	DATABASE_URL  string
	JWT_SECRET    string
	KAFKA_ADDRESS string
	LOG_LEVEL     string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		HTTP_ADDR:     getDefault("HTTP_ADDR", ":8080"),
		STORE_PATH:    getDefault("STORE_PATH", "acold.db"),
		DATABASE_URL:  os.Getenv("DATABASE_URL"),
		JWT_SECRET:    getDefault("JWT_SECRET", "acold-dev-secret"),
		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),
		LOG_LEVEL:     os.Getenv("LOG_LEVEL"),
	}

	return config, nil
}

func getDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
