package simpleblog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tendant/simple-blog/pkg/simpleblog"
	"github.com/tendant/simple-blog/pkg/simpleblog/repo/memory"
)

func TestServiceCreation(t *testing.T) {
	tests := []struct {
		name        string
		options     []simpleblog.Option
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     []simpleblog.Option{},
			expectError: true,
		},
		{
			name: "with repository should succeed",
			options: []simpleblog.Option{
				simpleblog.WithRepository(memory.New()),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := simpleblog.New(tt.options...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func setupTestService(t *testing.T) simpleblog.Service {
	svc, err := simpleblog.New(simpleblog.WithRepository(memory.New()))
	require.NoError(t, err)
	require.NotNil(t, svc)
	return svc
}

func createTestPost(t *testing.T, svc simpleblog.Service, title string) *simpleblog.Post {
	post, err := svc.CreatePost(context.Background(), simpleblog.CreatePostRequest{
		Title:       title,
		Description: "A test post description.",
		Content:     "<p>Test content.</p>",
		ImageURL:    "https://example.com/image.jpg",
	})
	require.NoError(t, err)
	require.NotNil(t, post)
	return post
}

func TestPostOperations(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("CreatePost", func(t *testing.T) {
		req := simpleblog.CreatePostRequest{
			Title:       "Next.js 14: A Guide!",
			Description: "A guide to the latest Next.js release.",
			Content:     "<p>Everything about Next.js 14.</p>",
			ImageURL:    "https://example.com/nextjs.jpg",
		}

		post, err := svc.CreatePost(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, post)

		assert.False(t, post.ID.IsZero())
		assert.Equal(t, "nextjs-14-a-guide", post.Slug)
		assert.Equal(t, req.Title, post.Title)
		assert.Equal(t, req.Title, post.Alt)
		assert.Equal(t, req.Title, post.MetaTitle)
		assert.Equal(t, req.Description, post.MetaDescription)
		assert.False(t, post.CreatedAt.IsZero())
		assert.False(t, post.UpdatedAt.IsZero())
	})

	t.Run("CreatePost with invalid payload", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, simpleblog.CreatePostRequest{
			Description: "Missing a title.",
			Content:     "<p>Content.</p>",
			ImageURL:    "https://example.com/image.jpg",
		})
		require.Error(t, err)

		var verrs simpleblog.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		require.Len(t, verrs, 1)
		assert.Equal(t, "title", verrs[0].Field)
		assert.Equal(t, simpleblog.ReasonRequired, verrs[0].Reason)
	})

	t.Run("GetPost", func(t *testing.T) {
		created := createTestPost(t, svc, "Post for Retrieval")

		retrieved, err := svc.GetPost(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, created.ID, retrieved.ID)
		assert.Equal(t, created.Title, retrieved.Title)
		assert.Equal(t, created.Slug, retrieved.Slug)
	})

	t.Run("GetPost with unknown id", func(t *testing.T) {
		_, err := svc.GetPost(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, simpleblog.ErrPostNotFound)
	})

	t.Run("GetPost with malformed id", func(t *testing.T) {
		_, err := svc.GetPost(ctx, "not-an-object-id")
		assert.ErrorIs(t, err, simpleblog.ErrInvalidID)
	})

	t.Run("DeletePost", func(t *testing.T) {
		created := createTestPost(t, svc, "Post for Deletion")

		err := svc.DeletePost(ctx, created.ID.Hex())
		require.NoError(t, err)

		_, err = svc.GetPost(ctx, created.ID.Hex())
		assert.ErrorIs(t, err, simpleblog.ErrPostNotFound)

		err = svc.DeletePost(ctx, created.ID.Hex())
		assert.ErrorIs(t, err, simpleblog.ErrPostNotFound)
	})
}

func TestUpdatePost(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	str := func(s string) *string { return &s }

	t.Run("title change re-derives slug", func(t *testing.T) {
		created := createTestPost(t, svc, "Original Title")
		require.Equal(t, "original-title", created.Slug)

		updated, err := svc.UpdatePost(ctx, created.ID.Hex(), simpleblog.UpdatePostRequest{
			Title: str("Brand New Title"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Brand New Title", updated.Title)
		assert.Equal(t, "brand-new-title", updated.Slug)
		assert.Equal(t, created.Description, updated.Description)
		assert.Equal(t, created.Content, updated.Content)
	})

	t.Run("non-title change keeps slug", func(t *testing.T) {
		created := createTestPost(t, svc, "Stable Slug Post")

		updated, err := svc.UpdatePost(ctx, created.ID.Hex(), simpleblog.UpdatePostRequest{
			Description: str("An updated description."),
		})
		require.NoError(t, err)
		assert.Equal(t, created.Slug, updated.Slug)
		assert.Equal(t, "An updated description.", updated.Description)
	})

	t.Run("same title keeps slug", func(t *testing.T) {
		created := createTestPost(t, svc, "Same Title Post")

		updated, err := svc.UpdatePost(ctx, created.ID.Hex(), simpleblog.UpdatePostRequest{
			Title: str("Same Title Post"),
		})
		require.NoError(t, err)
		assert.Equal(t, created.Slug, updated.Slug)
	})

	t.Run("invalid patch rejected before store access", func(t *testing.T) {
		created := createTestPost(t, svc, "Patch Validation Post")

		_, err := svc.UpdatePost(ctx, created.ID.Hex(), simpleblog.UpdatePostRequest{
			Title: str(""),
		})
		var verrs simpleblog.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "title", verrs[0].Field)

		unchanged, err := svc.GetPost(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, created.Title, unchanged.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdatePost(ctx, primitive.NewObjectID().Hex(), simpleblog.UpdatePostRequest{
			Title: str("Whatever"),
		})
		assert.ErrorIs(t, err, simpleblog.ErrPostNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.UpdatePost(ctx, "bogus", simpleblog.UpdatePostRequest{
			Title: str("Whatever"),
		})
		assert.ErrorIs(t, err, simpleblog.ErrInvalidID)
	})
}

func TestListPosts(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		posts, err := svc.ListPosts(ctx)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("newest first", func(t *testing.T) {
		first := createTestPost(t, svc, "First Post")
		time.Sleep(2 * time.Millisecond)
		second := createTestPost(t, svc, "Second Post")
		time.Sleep(2 * time.Millisecond)
		third := createTestPost(t, svc, "Third Post")

		posts, err := svc.ListPosts(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, third.ID, posts[0].ID)
		assert.Equal(t, second.ID, posts[1].ID)
		assert.Equal(t, first.ID, posts[2].ID)
	})
}

type failingRepository struct{}

var errStoreDown = errors.New("connection refused")

func (failingRepository) CreatePost(context.Context, *simpleblog.Post) error { return errStoreDown }
func (failingRepository) GetPost(context.Context, primitive.ObjectID) (*simpleblog.Post, error) {
	return nil, errStoreDown
}
func (failingRepository) UpdatePost(context.Context, *simpleblog.Post) error { return errStoreDown }
func (failingRepository) DeletePost(context.Context, primitive.ObjectID) error {
	return errStoreDown
}
func (failingRepository) ListPosts(context.Context) ([]*simpleblog.Post, error) {
	return nil, errStoreDown
}

func TestStoreFailuresWrapped(t *testing.T) {
	svc, err := simpleblog.New(simpleblog.WithRepository(failingRepository{}))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.ListPosts(ctx)
	var se *simpleblog.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "list", se.Op)
	assert.ErrorIs(t, err, errStoreDown)

	_, err = svc.GetPost(ctx, primitive.NewObjectID().Hex())
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "get", se.Op)
}
