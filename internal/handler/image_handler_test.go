package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-publisher/internal/domain"
	"blog-publisher/internal/mocks"
	"blog-publisher/internal/service"
	"blog-publisher/internal/storage"
	"blog-publisher/internal/validator"
)

const testPNG = "\x89PNG\r\n\x1a\nIHDR-data"

func TestImageHandler_GetImage(t *testing.T) {
	store, err := storage.NewDiskImageStore(t.TempDir(), 1024)
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), storage.Upload{
		OriginalName: "cover.png",
		MimeType:     "image/png",
		Reader:       strings.NewReader(testPNG),
	})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/api/:filename", NewImageHandler(store).GetImage)

	t.Run("serves stored image", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/"+ref.Filename, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testPNG, w.Body.String())
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	})

	t.Run("returns 404 for unknown file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/missing.png", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"image not found"}`, w.Body.String())
	})
}

func TestImageHandler_GetImage_UsesStorePath(t *testing.T) {
	images := mocks.NewMockImageStore(t)
	images.EXPECT().Path("gone.webp").Return("", storage.ErrImageNotFound)

	router := gin.New()
	router.GET("/api/:filename", NewImageHandler(images).GetImage)

	req := httptest.NewRequest(http.MethodGet, "/api/gone.webp", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImageUpload_ServedOnlyAsImage(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewDiskImageStore(dir, 1024)
	require.NoError(t, err)

	repo := mocks.NewMockArticleRepository(t)
	articles := NewArticleHandler(service.NewArticleService(repo, store, validator.NewValidator()))

	router := gin.New()
	router.POST("/api/blogs/create", articles.CreateArticle)
	router.GET("/api/:filename", NewImageHandler(store).GetImage)

	fields := map[string]string{"title": "Hello", "author": "ann", "article": "body"}

	t.Run("html declared as png is rejected", func(t *testing.T) {
		body, contentType := articleFormWithImage(t, fields, "evil.html", "image/png",
			[]byte("<html><script>alert(document.cookie)</script></html>"))
		req := httptest.NewRequest(http.MethodPost, "/api/blogs/create", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("real png named html is stored and served as png", func(t *testing.T) {
		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		body, contentType := articleFormWithImage(t, fields, "evil.html", "image/png", []byte(testPNG))
		req := httptest.NewRequest(http.MethodPost, "/api/blogs/create", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		created := decodeArticles(t, w)
		require.Len(t, created, 1)
		ref, err := domain.ParseImageRef(created[0].Image)
		require.NoError(t, err)
		assert.Equal(t, ".png", filepath.Ext(ref.Filename))

		req = httptest.NewRequest(http.MethodGet, "/api/"+ref.Filename, nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	})
}
