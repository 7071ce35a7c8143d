package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tendant/simple-blog/pkg/simpleblog"
)

// Repository implements simpleblog.Repository using in-memory storage
type Repository struct {
	mu    sync.RWMutex
	posts map[primitive.ObjectID]*simpleblog.Post
}

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		posts: make(map[primitive.ObjectID]*simpleblog.Post),
	}
}

func (r *Repository) CreatePost(ctx context.Context, post *simpleblog.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now

	// Store a copy to avoid external modifications
	postCopy := *post
	r.posts[post.ID] = &postCopy

	return nil
}

func (r *Repository) GetPost(ctx context.Context, id primitive.ObjectID) (*simpleblog.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, exists := r.posts[id]
	if !exists {
		return nil, simpleblog.ErrPostNotFound
	}

	postCopy := *post
	return &postCopy, nil
}

func (r *Repository) UpdatePost(ctx context.Context, post *simpleblog.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[post.ID]; !exists {
		return simpleblog.ErrPostNotFound
	}

	post.UpdatedAt = time.Now().UTC()
	postCopy := *post
	r.posts[post.ID] = &postCopy

	return nil
}

func (r *Repository) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[id]; !exists {
		return simpleblog.ErrPostNotFound
	}

	delete(r.posts, id)
	return nil
}

func (r *Repository) ListPosts(ctx context.Context) ([]*simpleblog.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*simpleblog.Post, 0, len(r.posts))
	for _, post := range r.posts {
		postCopy := *post
		result = append(result, &postCopy)
	}

	// Sort by createdAt descending, newest first
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}
