package storage

import (
	"context"
	"io"
	"time"
)

// ImageRepository defines the interface for generated-asset blob storage
type ImageRepository interface {
	// Upload stores data under objectPath and returns the stored object path.
	// Pass size < 0 when the length is unknown.
	Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error)
	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, objectPath string) error
	// GeneratePresignedURL returns a temporary GET URL for an object
	GeneratePresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error)
}
