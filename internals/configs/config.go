package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	MediaRoot string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	MediaRoot = GetEnvDefault("MEDIA_ROOT", "media")

	if JWTSecret == "" {
		log.Println("warning: JWT_SECRET is not set")
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
