package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	ServerPort  string
	DBDriver    string
	DatabaseDSN string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	SessionTTL  time.Duration
	SwaggerHost string

	// GalleryPageSize is the number of photos fetched per gallery page.
	GalleryPageSize int

	Storage StorageConfig
	SMTP    SMTPConfig
}

// StorageConfig selects where unregistered photo files are listed from.
type StorageConfig struct {
	Backend        string // local | minio
	PhotoDir       string
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOPrefix    string
	MinIOUseSSL    bool
}

// SMTPConfig is used by the mail worker.
type SMTPConfig struct {
	Host      string
	Port      string
	From      string
	Recipient string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DBDriver:        getEnv("DB_DRIVER", "mysql"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "user:password@tcp(localhost:3306)/atelier?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       getEnv("JWT_SECRET", "change-me"),
		SessionTTL:      time.Duration(getEnvInt("SESSION_TTL_MINUTES", 12*60)) * time.Minute,
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
		GalleryPageSize: getEnvInt("GALLERY_PAGE_SIZE", 12),
		Storage: StorageConfig{
			Backend:        getEnv("STORAGE_BACKEND", "local"),
			PhotoDir:       getEnv("PHOTO_DIR", "./static/photo/full"),
			MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			MinIOSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			MinIOBucket:    getEnv("MINIO_BUCKET", "atelier"),
			MinIOPrefix:    getEnv("MINIO_PREFIX", "photo/full/"),
			MinIOUseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTPConfig{
			Host:      getEnv("SMTP_HOST", "localhost"),
			Port:      getEnv("SMTP_PORT", "1025"),
			From:      getEnv("SMTP_FROM", "noreply@atelier.local"),
			Recipient: getEnv("CONTACT_RECIPIENT", "studio@atelier.local"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
