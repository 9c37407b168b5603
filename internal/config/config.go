package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting of the app.
// It is built once in main and passed into each service explicitly.
type Config struct {
	Port string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	JWTSecret string

	// Blob store (S3-compatible: AWS S3, MinIO, RustFS).
	BlobEndpoint     string
	BlobRegion       string
	BlobBucket       string
	BlobAccessKey    string
	BlobSecretKey    string
	BlobUsePathStyle bool

	// Client-side deadline for a single blob save/load.
	BlobTimeout time.Duration

	GoEnv string
	FEURL string
}

// Load reads settings from environment variables.
func Load() (Config, error) {
	pgPort, err := mustAtoi("POSTGRES_PORT")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		BlobEndpoint:     os.Getenv("BLOB_ENDPOINT"),
		BlobRegion:       getenv("BLOB_REGION", "us-east-1"),
		BlobBucket:       os.Getenv("BLOB_BUCKET"),
		BlobAccessKey:    os.Getenv("BLOB_ACCESS_KEY"),
		BlobSecretKey:    os.Getenv("BLOB_SECRET_KEY"),
		BlobUsePathStyle: os.Getenv("BLOB_USE_PATH_STYLE") == "true",

		BlobTimeout: 5 * time.Second,

		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: os.Getenv("FE_URL"),
	}

	if v := os.Getenv("BLOB_TIMEOUT_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return Config{}, fmt.Errorf("BLOB_TIMEOUT_MS must be a positive number")
		}
		cfg.BlobTimeout = time.Duration(ms) * time.Millisecond
	}

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.PostgresUser == "" {
		return Config{}, fmt.Errorf("POSTGRES_USER is required")
	}
	if cfg.PostgresPassword == "" {
		return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	if cfg.PostgresDB == "" {
		return Config{}, fmt.Errorf("POSTGRES_DB is required")
	}
	if cfg.PostgresHost == "" {
		return Config{}, fmt.Errorf("POSTGRES_HOST is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.BlobBucket == "" {
		return Config{}, fmt.Errorf("BLOB_BUCKET is required")
	}
	if cfg.BlobAccessKey == "" {
		return Config{}, fmt.Errorf("BLOB_ACCESS_KEY is required")
	}
	if cfg.BlobSecretKey == "" {
		return Config{}, fmt.Errorf("BLOB_SECRET_KEY is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
