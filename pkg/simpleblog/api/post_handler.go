package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/tendant/simple-blog/pkg/simpleblog"
	"github.com/tendant/simple-blog/pkg/simpleblog/seo"
)

// PostHandler handles HTTP requests for posts
type PostHandler struct {
	service  simpleblog.Service
	resolver *seo.Resolver
}

// NewPostHandler creates a new post handler
func NewPostHandler(service simpleblog.Service, resolver *seo.Resolver) *PostHandler {
	return &PostHandler{
		service:  service,
		resolver: resolver,
	}
}

// Routes returns the routes for posts
func (h *PostHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListPosts)
	r.Post("/", h.CreatePost)
	r.Get("/meta", h.GetListMetadata)
	r.Get("/{id}", h.GetPost)
	r.Put("/{id}", h.UpdatePost)
	r.Delete("/{id}", h.DeletePost)
	r.Get("/{id}/meta", h.GetPostMetadata)

	return r
}

// CreatePostRequest is the request body for creating a post
type CreatePostRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Content         string `json:"content"`
	ImageURL        string `json:"imageUrl"`
	Alt             string `json:"alt,omitempty"`
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
}

// UpdatePostRequest is the request body for a partial post update. Absent
// fields are left untouched.
type UpdatePostRequest struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	Content         *string `json:"content,omitempty"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	Alt             *string `json:"alt,omitempty"`
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
}

// ErrorResponse is the JSON body for error responses
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// MessageResponse is the JSON body for confirmation messages
type MessageResponse struct {
	Message string `json:"message"`
}

// ListPosts returns all posts, newest first
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch posts")
		return
	}

	if posts == nil {
		posts = []*simpleblog.Post{}
	}
	render.JSON(w, r, posts)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to fetch post")
		return
	}

	render.JSON(w, r, post)
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Invalid request body"})
		return
	}

	post, err := h.service.CreatePost(r.Context(), simpleblog.CreatePostRequest{
		Title:           req.Title,
		Description:     req.Description,
		Content:         req.Content,
		ImageURL:        req.ImageURL,
		Alt:             req.Alt,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	})
	if err != nil {
		writeError(w, r, err, "Failed to create post")
		return
	}

	slog.Info("Post created", "post_id", post.ID.Hex(), "slug", post.Slug)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, post)
}

// UpdatePost applies a partial update to a post
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Invalid request body"})
		return
	}

	post, err := h.service.UpdatePost(r.Context(), id, simpleblog.UpdatePostRequest{
		Title:           req.Title,
		Description:     req.Description,
		Content:         req.Content,
		ImageURL:        req.ImageURL,
		Alt:             req.Alt,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	})
	if err != nil {
		writeError(w, r, err, "Failed to update post")
		return
	}

	render.JSON(w, r, post)
}

// DeletePost removes a post by ID
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeletePost(r.Context(), id); err != nil {
		writeError(w, r, err, "Failed to delete post")
		return
	}

	render.JSON(w, r, MessageResponse{Message: "Post deleted successfully"})
}

// GetPostMetadata returns the metadata record for a post page. It always
// responds 200: resolution failures degrade to a generic non-indexed record.
func (h *PostHandler) GetPostMetadata(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	meta := h.resolver.ForPost(r.Context(), baseURL(r), id)
	render.JSON(w, r, meta)
}

// GetListMetadata returns the metadata record for the post listing page
func (h *PostHandler) GetListMetadata(w http.ResponseWriter, r *http.Request) {
	meta := h.resolver.ForList(baseURL(r))
	render.JSON(w, r, meta)
}

// baseURL derives the canonical URL base from the ?base query parameter,
// falling back to the request host.
func baseURL(r *http.Request) string {
	if base := r.URL.Query().Get("base"); base != "" {
		return base
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// writeError maps service errors onto the HTTP error taxonomy: validation
// and malformed IDs are 400, missing posts 404, and everything else is a
// store-level 500 reported with the operation's generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error, storeMessage string) {
	var verrs simpleblog.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		resp := ErrorResponse{Error: verrs.Error()}
		if len(verrs) > 0 {
			resp.Field = verrs[0].Field
		}
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp)
	case errors.Is(err, simpleblog.ErrInvalidID):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Invalid post ID format"})
	case errors.Is(err, simpleblog.ErrPostNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: "Post not found"})
	default:
		slog.Error("Store operation failed", "path", r.URL.Path, "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: storeMessage})
	}
}
