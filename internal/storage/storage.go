// Package storage lists photo files that may still be missing from the catalog.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"atelier/internal/config"
)

// File is an image present in storage. Path is the directory or prefix it lives under.
type File struct {
	Name string `json:"filename"`
	Path string `json:"filepath"`
}

// Lister lists image files in photo storage.
type Lister interface {
	ListImages(ctx context.Context) ([]File, error)
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsImage reports whether name has a known image extension.
func IsImage(name string) bool {
	return imageExtensions[strings.ToLower(path.Ext(name))]
}

// New builds the Lister selected by cfg.Backend.
func New(ctx context.Context, cfg config.StorageConfig) (Lister, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalLister(cfg.PhotoDir), nil
	case "minio":
		return NewMinIOLister(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Backend)
	}
}
