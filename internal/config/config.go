package config

import (
	"os"
	"strconv"
	"strings"
)

// MongoConfig holds connection settings for the submission record store.
type MongoConfig struct {
	URI               string
	Database          string
	Collection        string
	ConnectTimeoutSec int
}

// CORSConfig holds the allowed origins for browser clients.
// Origins is a comma-separated list; "*" allows every origin.
type CORSConfig struct {
	Origins string
}

// MinIOConfig holds object storage settings for the export archive.
// The archive is optional: an empty Endpoint disables it.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once at startup. Sensitive
// values are not hardcoded.
type AppConfig struct {
	Port  string
	Mongo MongoConfig
	CORS  CORSConfig
	MinIO MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "8080"), // default only for non-sensitive value
		Mongo: MongoConfig{
			URI:               getEnv("MONGO_URL", ""),
			Database:          getEnv("DB_NAME", ""),
			Collection:        getEnv("MONGO_COLLECTION", "form_submissions"),
			ConnectTimeoutSec: getEnvInt("MONGO_CONNECT_TIMEOUT_SEC", 10),
		},
		CORS: CORSConfig{
			Origins: getEnv("CORS_ORIGINS", "*"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// AllowCredentials reports whether CORS credentials can be enabled.
// Browsers reject credentialed responses with a wildcard origin, so
// credentials are only allowed when explicit origins are configured.
func (c CORSConfig) AllowCredentials() bool {
	return c.Origins != "" && !strings.Contains(c.Origins, "*")
}

// ArchiveEnabled reports whether the export archive is configured.
func (c MinIOConfig) ArchiveEnabled() bool {
	return c.Endpoint != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
