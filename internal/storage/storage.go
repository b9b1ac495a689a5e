// Package storage publishes generated report artifacts to object
// storage. Publishing is optional; when disabled the charts stay on the
// local filesystem only.
package storage

import (
	"context"
	"fmt"

	"github.com/gdpruler/benchplot/internal/config"
	"github.com/gdpruler/benchplot/internal/errors"
)

// ObjectStorage abstracts the artifact publishing target.
type ObjectStorage interface {
	// Upload copies the local file at localPath to objectPath in the
	// storage backend.
	Upload(ctx context.Context, localPath, objectPath string) error

	// Exists reports whether an object exists at objectPath.
	Exists(ctx context.Context, objectPath string) (bool, error)

	// ListObjects returns all object paths under the given prefix.
	ListObjects(ctx context.Context, prefix string) ([]string, error)
}

// New builds the publisher selected by cfg. A "none" backend returns
// (nil, nil): callers skip publishing when the storage is nil.
func New(ctx context.Context, cfg config.StorageConfig) (ObjectStorage, error) {
	switch cfg.Type {
	case "", config.StorageNone:
		return nil, nil
	case config.StorageLocal:
		return NewLocalStorage(cfg.Path)
	case config.StorageS3:
		return NewS3Storage(ctx, cfg.S3)
	default:
		return nil, errors.NewStorageError(errors.CodeBadRequest,
			fmt.Sprintf("unknown storage type %q", cfg.Type), nil)
	}
}
