package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("GALLERY_PAGE_SIZE", "")
	t.Setenv("STORAGE_BACKEND", "")

	cfg := Load()

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 12, cfg.GalleryPageSize)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("GALLERY_PAGE_SIZE", "20")
	t.Setenv("SESSION_TTL_MINUTES", "30")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 20, cfg.GalleryPageSize)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.Storage.MinIOUseSSL)
	assert.Equal(t, 0, cfg.RedisDB)
}
