package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origURL := os.Getenv("MONGO_URL")
	defer os.Setenv("MONGO_URL", origURL)

	os.Setenv("MONGO_URL", "mongodb://test-host:27017")
	os.Setenv("DB_NAME", "test_db")
	os.Setenv("MONGO_CONNECT_TIMEOUT_SEC", "20")
	os.Setenv("CORS_ORIGINS", "https://example.com")
	os.Setenv("MINIO_USE_SSL", "true")
	defer func() {
		os.Unsetenv("DB_NAME")
		os.Unsetenv("MONGO_CONNECT_TIMEOUT_SEC")
		os.Unsetenv("CORS_ORIGINS")
		os.Unsetenv("MINIO_USE_SSL")
	}()

	cfg := Load()

	assert.Equal(t, "mongodb://test-host:27017", cfg.Mongo.URI)
	assert.Equal(t, "test_db", cfg.Mongo.Database)
	assert.Equal(t, "form_submissions", cfg.Mongo.Collection)
	assert.Equal(t, 20, cfg.Mongo.ConnectTimeoutSec)
	assert.Equal(t, "https://example.com", cfg.CORS.Origins)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestCORSAllowCredentials(t *testing.T) {
	assert.False(t, CORSConfig{Origins: "*"}.AllowCredentials())
	assert.False(t, CORSConfig{Origins: ""}.AllowCredentials())
	assert.False(t, CORSConfig{Origins: "https://a.com,*"}.AllowCredentials())
	assert.True(t, CORSConfig{Origins: "https://a.com,https://b.com"}.AllowCredentials())
}

func TestArchiveEnabled(t *testing.T) {
	assert.False(t, MinIOConfig{}.ArchiveEnabled())
	assert.True(t, MinIOConfig{Endpoint: "localhost:9000"}.ArchiveEnabled())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
