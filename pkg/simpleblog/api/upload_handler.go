package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/tendant/simple-blog/pkg/simpleblog/storage"
)

// UploadHandler handles image uploads for the post creation form. The post
// service only ever sees the URL returned here.
type UploadHandler struct {
	backend storage.Backend
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(backend storage.Backend) *UploadHandler {
	return &UploadHandler{backend: backend}
}

// Routes returns the routes for uploads
func (h *UploadHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.UploadImage)
	return r
}

// UploadImageRequest is the request body for an image upload. Data carries
// the image bytes, base64-encoded, optionally as a data URL.
type UploadImageRequest struct {
	FileName    string `json:"fileName,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Data        string `json:"data"`
}

// UploadImageResponse is the response body for a completed upload
type UploadImageResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// UploadImage stores an image and returns its public URL
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	var req UploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Data == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Image data is required", Field: "data"})
		return
	}

	data, contentType := splitDataURL(req.Data)
	if contentType == "" {
		contentType = req.ContentType
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Image data is not valid base64", Field: "data"})
		return
	}

	key := imageKey(req.FileName)
	if err := h.backend.Upload(r.Context(), key, contentType, bytes.NewReader(raw)); err != nil {
		slog.Error("Failed to upload image", "key", key, "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: "Failed to upload image"})
		return
	}

	slog.Info("Image uploaded", "key", key, "size", len(raw))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, UploadImageResponse{
		URL: h.backend.URL(key),
		Key: key,
	})
}

// splitDataURL strips a "data:<type>;base64," prefix, returning the bare
// base64 payload and the declared content type if present.
func splitDataURL(data string) (string, string) {
	if !strings.HasPrefix(data, "data:") {
		return data, ""
	}
	idx := strings.Index(data, ",")
	if idx < 0 {
		return data, ""
	}
	header := data[len("data:"):idx]
	contentType := strings.TrimSuffix(header, ";base64")
	return data[idx+1:], contentType
}

// imageKey builds a sharded object key: images/{shard}/{rest}_{filename}.
func imageKey(fileName string) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	shard, rest := id[:2], id[2:]
	if fileName == "" {
		return fmt.Sprintf("images/%s/%s", shard, rest)
	}
	return fmt.Sprintf("images/%s/%s_%s", shard, rest, sanitizeFilename(fileName))
}

func sanitizeFilename(filename string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "_",
	)
	return replacer.Replace(filename)
}
