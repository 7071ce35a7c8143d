package simpleblog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the persistence contract for posts. Implementations assign
// ID, CreatedAt and UpdatedAt on create, refresh UpdatedAt on update, and
// return ErrPostNotFound when no record matches; any other failure is
// reported as a *StoreError.
type Repository interface {
	CreatePost(ctx context.Context, post *Post) error
	GetPost(ctx context.Context, id primitive.ObjectID) (*Post, error)
	UpdatePost(ctx context.Context, post *Post) error
	DeletePost(ctx context.Context, id primitive.ObjectID) error
	ListPosts(ctx context.Context) ([]*Post, error)
}
