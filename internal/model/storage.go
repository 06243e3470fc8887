package model

import (
	"context"
	"io"
)

// Storage is a flat key/object store. Download of a missing key returns ErrNotFound.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
