package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	ServerPort     string
	GinMode        string
	APIBaseURL     string
	AllowedOrigins []string
	StatePath      string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "taskboard")
	ServerPort = getEnv("SERVER_PORT", "8000")
	GinMode = getEnv("GIN_MODE", "debug")
	APIBaseURL = getEnv("API_BASE_URL", "http://localhost:8000")
	AllowedOrigins = strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ",")
	StatePath = getEnv("STATE_PATH", ".taskboard-state.json")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
