package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret      string
	Issuer         string
	TokenTTL       time.Duration
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	ServerPort     string
	AllowedOrigins []string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "formbuilder")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "formbuilder")
	ServerPort = getEnv("SERVER_PORT", "8080")
	AllowedOrigins = strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ",")

	// TOKEN_TTL=0 disables token expiry.
	ttl := getEnv("TOKEN_TTL", "24h")
	TokenTTL, err = time.ParseDuration(ttl)
	if err != nil {
		log.Fatalf("Invalid TOKEN_TTL %q: %v", ttl, err)
	}
	if TokenTTL < 0 {
		log.Fatalf("Invalid TOKEN_TTL %q: must not be negative", ttl)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
