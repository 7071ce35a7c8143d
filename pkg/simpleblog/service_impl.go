package simpleblog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// service implements the Service interface
type service struct {
	repository Repository
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	return s, nil
}

func (s *service) ListPosts(ctx context.Context) ([]*Post, error) {
	posts, err := s.repository.ListPosts(ctx)
	if err != nil {
		return nil, storeFailure("list", err)
	}
	return posts, nil
}

func (s *service) GetPost(ctx context.Context, id string) (*Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	post, err := s.repository.GetPost(ctx, oid)
	if err != nil {
		return nil, storeFailure("get", err)
	}
	return post, nil
}

func (s *service) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	normalized, verrs := ValidateNew(req)
	if len(verrs) > 0 {
		return nil, verrs
	}

	post := &Post{
		Title:           normalized.Title,
		Description:     normalized.Description,
		Content:         normalized.Content,
		ImageURL:        normalized.ImageURL,
		Alt:             normalized.Alt,
		MetaTitle:       normalized.MetaTitle,
		MetaDescription: normalized.MetaDescription,
		Slug:            Slugify(normalized.Title),
	}

	if err := s.repository.CreatePost(ctx, post); err != nil {
		return nil, storeFailure("create", err)
	}
	return post, nil
}

func (s *service) UpdatePost(ctx context.Context, id string, patch UpdatePostRequest) (*Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if verrs := ValidatePatch(patch); len(verrs) > 0 {
		return nil, verrs
	}

	post, err := s.repository.GetPost(ctx, oid)
	if err != nil {
		return nil, storeFailure("get", err)
	}

	if applyPatch(post, patch) {
		post.Slug = Slugify(post.Title)
	}

	if err := s.repository.UpdatePost(ctx, post); err != nil {
		return nil, storeFailure("update", err)
	}
	return post, nil
}

func (s *service) DeletePost(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.repository.DeletePost(ctx, oid); err != nil {
		return storeFailure("delete", err)
	}
	return nil
}

// applyPatch merges supplied patch fields onto the post and reports whether
// the title actually changed, which is the only case that re-derives the
// slug.
func applyPatch(post *Post, patch UpdatePostRequest) bool {
	titleChanged := false
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title != post.Title {
			post.Title = title
			titleChanged = true
		}
	}
	if patch.Description != nil {
		post.Description = *patch.Description
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.ImageURL != nil {
		post.ImageURL = *patch.ImageURL
	}
	if patch.Alt != nil {
		post.Alt = *patch.Alt
	}
	if patch.MetaTitle != nil {
		post.MetaTitle = *patch.MetaTitle
	}
	if patch.MetaDescription != nil {
		post.MetaDescription = *patch.MetaDescription
	}
	return titleChanged
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// storeFailure passes through errors the caller can act on and wraps
// everything else as a StoreError so driver types never cross the service
// boundary.
func storeFailure(op string, err error) error {
	if errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrInvalidID) {
		return err
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
