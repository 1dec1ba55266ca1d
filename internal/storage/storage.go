package storage

import (
	"Explorer/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

var ErrObjectNotFound = errors.New("object not found")

// StoredObject describes one physical object held by a ContentStore.
type StoredObject struct {
	Path    string
	ModTime time.Time
}

// ContentStore holds the bytes behind file rows. Paths are opaque to callers.
type ContentStore interface {
	Write(ctx context.Context, name string, r io.Reader) (string, error)
	Read(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	List(ctx context.Context) ([]StoredObject, error)
}

func NewContentStore(cfg *config.Configuration) (ContentStore, error) {
	switch cfg.Storage.Driver {
	case "disk":
		return NewDiskStore(cfg.Storage.Path)
	case "minio":
		return NewMinioStore(context.Background(), cfg.Storage.Minio)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
