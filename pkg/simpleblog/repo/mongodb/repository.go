package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tendant/simple-blog/pkg/simpleblog"
)

// Config options for the MongoDB repository
type Config struct {
	URL        string // connection string, e.g. "mongodb://localhost:27017"
	Database   string // database name (default: "blog")
	Collection string // collection name (default: "posts")

	// OperationTimeout bounds every store call; expiry surfaces to callers
	// as a StoreError (default: 5s).
	OperationTimeout time.Duration
}

// Repository implements simpleblog.Repository backed by a MongoDB collection.
type Repository struct {
	client  *mongo.Client
	posts   *mongo.Collection
	timeout time.Duration
}

// New connects to MongoDB, verifies the connection with a ping and returns
// the repository. Callers own the connection lifecycle and must Close it.
func New(ctx context.Context, cfg Config) (*Repository, error) {
	if cfg.URL == "" {
		return nil, errors.New("connection url is required")
	}
	if cfg.Database == "" {
		cfg.Database = "blog"
	}
	if cfg.Collection == "" {
		cfg.Collection = "posts"
	}
	if cfg.OperationTimeout == 0 {
		cfg.OperationTimeout = 5 * time.Second
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{
		client:  client,
		posts:   client.Database(cfg.Database).Collection(cfg.Collection),
		timeout: cfg.OperationTimeout,
	}, nil
}

// Close disconnects the underlying client.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *Repository) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *Repository) CreatePost(ctx context.Context, post *simpleblog.Post) error {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.posts.InsertOne(ctx, post); err != nil {
		return &simpleblog.StoreError{Op: "create", Err: err}
	}
	return nil
}

func (r *Repository) GetPost(ctx context.Context, id primitive.ObjectID) (*simpleblog.Post, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var post simpleblog.Post
	err := r.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, simpleblog.ErrPostNotFound
		}
		return nil, &simpleblog.StoreError{Op: "get", Err: err}
	}
	return &post, nil
}

func (r *Repository) UpdatePost(ctx context.Context, post *simpleblog.Post) error {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	post.UpdatedAt = time.Now().UTC()

	result, err := r.posts.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return &simpleblog.StoreError{Op: "update", Err: err}
	}
	if result.MatchedCount == 0 {
		return simpleblog.ErrPostNotFound
	}
	return nil
}

func (r *Repository) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	result, err := r.posts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &simpleblog.StoreError{Op: "delete", Err: err}
	}
	if result.DeletedCount == 0 {
		return simpleblog.ErrPostNotFound
	}
	return nil
}

func (r *Repository) ListPosts(ctx context.Context) ([]*simpleblog.Post, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &simpleblog.StoreError{Op: "list", Err: err}
	}
	defer cursor.Close(ctx)

	var posts []*simpleblog.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, &simpleblog.StoreError{Op: "list", Err: err}
	}
	return posts, nil
}
