// Package simpleblog provides the core blog post service: the Post entity,
// payload validation with default-filling, slug derivation, and CRUD
// operations over a pluggable document store.
//
// Basic usage:
//
//	repo := memory.New()
//	svc, err := simpleblog.New(simpleblog.WithRepository(repo))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	post, err := svc.CreatePost(ctx, simpleblog.CreatePostRequest{
//	    Title:       "Getting Started",
//	    Description: "A short introduction",
//	    Content:     "<p>Hello</p>",
//	    ImageURL:    "https://images.example.com/cover.jpg",
//	})
//
// Errors surfaced by the service fall into four classes: ValidationErrors
// (client payload violates a constraint), ErrPostNotFound, ErrInvalidID
// (malformed identifier), and StoreError (the underlying store failed).
// HTTP handlers in package api map these onto 400/404/500 responses.
package simpleblog
