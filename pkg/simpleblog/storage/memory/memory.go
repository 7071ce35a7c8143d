package memory

import (
	"context"
	"io"
	"sync"
)

// Backend is an in-memory implementation of the storage.Backend interface,
// intended for tests and development.
type Backend struct {
	mu           sync.RWMutex
	objects      map[string][]byte
	contentTypes map[string]string
}

// New creates a new in-memory storage backend
func New() *Backend {
	return &Backend{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

// Upload stores content directly in memory
func (b *Backend) Upload(ctx context.Context, objectKey, contentType string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.objects[objectKey] = data
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	b.contentTypes[objectKey] = contentType
	return nil
}

// URL returns a memory:// pseudo-URL for the object
func (b *Backend) URL(objectKey string) string {
	return "memory://" + objectKey
}

// Get returns the stored bytes for an object key, for test inspection.
func (b *Backend) Get(objectKey string) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, exists := b.objects[objectKey]
	return data, exists
}
