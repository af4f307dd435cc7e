package storage

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"atelier/internal/config"
)

// MinIOLister lists images stored under a prefix of a MinIO bucket.
type MinIOLister struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIOLister creates the MinIO client and verifies the bucket exists.
func NewMinIOLister(ctx context.Context, cfg config.StorageConfig) (*MinIOLister, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", cfg.MinIOBucket)
	}

	return &MinIOLister{
		client: client,
		bucket: cfg.MinIOBucket,
		prefix: cfg.MinIOPrefix,
	}, nil
}

// ListImages returns the images directly under the prefix sorted by name.
func (m *MinIOLister) ListImages(ctx context.Context) ([]File, error) {
	objects := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    m.prefix,
		Recursive: false,
	})

	var files []File
	for obj := range objects {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") || !IsImage(obj.Key) {
			continue
		}
		files = append(files, File{
			Name: path.Base(obj.Key),
			Path: m.bucket + "/" + strings.TrimSuffix(m.prefix, "/"),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
