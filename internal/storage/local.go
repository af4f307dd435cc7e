package storage

import (
	"context"
	"fmt"
	"os"
	"sort"
)

// LocalLister lists images from a directory on disk. Subdirectories are ignored.
type LocalLister struct {
	dir string
}

// NewLocalLister creates a lister for dir.
func NewLocalLister(dir string) *LocalLister {
	return &LocalLister{dir: dir}
}

// ListImages returns the image files of the directory sorted by name.
func (l *LocalLister) ListImages(ctx context.Context) ([]File, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read photo dir: %w", err)
	}

	files := make([]File, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.Type().IsRegular() || !IsImage(e.Name()) {
			continue
		}
		files = append(files, File{Name: e.Name(), Path: l.dir})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
