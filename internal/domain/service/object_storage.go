package service

import (
	"context"
	"io"
)

// ObjectStorage defines the interface for storing uploaded files.
// Implementations return the publicly reachable URL of the stored object.
type ObjectStorage interface {
	// Upload stores the file content under the given folder and returns the
	// object key and its public URL.
	Upload(ctx context.Context, folder, fileName, contentType string, content io.Reader, size int64) (key string, url string, err error)
}
