package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memorystorage "github.com/tendant/simple-blog/pkg/simpleblog/storage/memory"
)

func setupUploadHandlerTest(t *testing.T) (chi.Router, *memorystorage.Backend) {
	backend := memorystorage.New()
	handler := NewUploadHandler(backend)
	router := chi.NewRouter()
	router.Mount("/upload", handler.Routes())
	return router, backend
}

func uploadJSON(t *testing.T, router chi.Router, body UploadImageRequest) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadHandler_UploadImage_Success(t *testing.T) {
	router, backend := setupUploadHandlerTest(t)

	payload := []byte("fake image bytes")
	w := uploadJSON(t, router, UploadImageRequest{
		FileName:    "cover.jpg",
		ContentType: "image/jpeg",
		Data:        base64.StdEncoding.EncodeToString(payload),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp UploadImageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.URL)
	assert.True(t, strings.HasPrefix(resp.Key, "images/"))
	assert.True(t, strings.HasSuffix(resp.Key, "_cover.jpg"))

	stored, ok := backend.Get(resp.Key)
	require.True(t, ok)
	assert.Equal(t, payload, stored)
}

func TestUploadHandler_UploadImage_DataURL(t *testing.T) {
	router, backend := setupUploadHandlerTest(t)

	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	data := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	w := uploadJSON(t, router, UploadImageRequest{
		FileName: "pixel.png",
		Data:     data,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp UploadImageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	stored, ok := backend.Get(resp.Key)
	require.True(t, ok)
	assert.Equal(t, payload, stored)
}

func TestUploadHandler_UploadImage_MissingData(t *testing.T) {
	router, _ := setupUploadHandlerTest(t)

	w := uploadJSON(t, router, UploadImageRequest{FileName: "empty.jpg"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "data", resp.Field)
}

func TestUploadHandler_UploadImage_InvalidBase64(t *testing.T) {
	router, _ := setupUploadHandlerTest(t)

	w := uploadJSON(t, router, UploadImageRequest{
		FileName: "bad.jpg",
		Data:     "not base64 at all!!!",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_photo.jpg", sanitizeFilename("my photo.jpg"))
	assert.Equal(t, "a_b_c.png", sanitizeFilename(`a/b\c.png`))
	assert.Equal(t, "weird_.gif", sanitizeFilename("weird?.gif"))
}

func TestImageKeySharding(t *testing.T) {
	key := imageKey("cover.jpg")

	parts := strings.Split(key, "/")
	require.Len(t, parts, 3)
	assert.Equal(t, "images", parts[0])
	assert.Len(t, parts[1], 2)
	assert.True(t, strings.HasSuffix(parts[2], "_cover.jpg"))
}
