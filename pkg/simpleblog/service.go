package simpleblog

import "context"

// Service exposes the post operations backing the HTTP API. Identifiers are
// accepted as hex strings and parsed before any store access; a string that
// does not parse fails with ErrInvalidID.
type Service interface {
	// ListPosts returns all posts ordered by creation time descending. An
	// empty store yields an empty slice, not an error.
	ListPosts(ctx context.Context) ([]*Post, error)

	// GetPost returns the post with the given ID.
	GetPost(ctx context.Context, id string) (*Post, error)

	// CreatePost validates the payload, fills defaults, derives the slug and
	// persists a new record with store-assigned ID and timestamps.
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// UpdatePost merges a partial patch onto the existing record, re-deriving
	// the slug when the title changes, and persists the result.
	UpdatePost(ctx context.Context, id string, patch UpdatePostRequest) (*Post, error)

	// DeletePost permanently removes the post. Deleting an absent ID reports
	// ErrPostNotFound.
	DeletePost(ctx context.Context, id string) error
}
