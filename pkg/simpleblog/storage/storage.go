// Package storage defines the blob backend used by the image upload
// endpoint. The post service itself never touches blobs; it only stores the
// public URL a backend reports for an uploaded object.
package storage

import (
	"context"
	"io"
)

// Backend stores uploaded image bytes under an object key and exposes a
// public URL for each stored object.
type Backend interface {
	// Upload stores the content read from reader under objectKey.
	Upload(ctx context.Context, objectKey, contentType string, reader io.Reader) error

	// URL returns the public URL serving the object.
	URL(objectKey string) string
}
