package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	// Logo upload storage
	UploadDriver string // "local" or "s3"
	UploadDir    string
	MaxUploadMB  int

	S3Bucket     string
	S3Region     string
	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string
	S3PublicBase string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "employer-hub"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 7*24*60),

		UploadDriver: getEnv("UPLOAD_DRIVER", "local"),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB:  getEnvInt("MAX_UPLOAD_MB", 5),

		S3Bucket:     os.Getenv("S3_BUCKET"),
		S3Region:     getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:   os.Getenv("S3_ENDPOINT"),
		S3AccessKey:  os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:  os.Getenv("S3_SECRET_KEY"),
		S3PublicBase: os.Getenv("S3_PUBLIC_BASE"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
