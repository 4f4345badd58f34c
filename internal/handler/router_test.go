package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog-publisher/internal/mocks"
	"blog-publisher/internal/storage"
)

func TestRegisterRoutes(t *testing.T) {
	articles := mocks.NewMockArticleServiceInterface(t)
	comments := mocks.NewMockCommentServiceInterface(t)
	images := mocks.NewMockImageStore(t)

	router := gin.New()
	RegisterRoutes(router, Handlers{
		Articles: NewArticleHandler(articles),
		Comments: NewCommentHandler(comments),
		Images:   NewImageHandler(images),
	})

	articles.EXPECT().ListArticles(mock.Anything).Return(nil, nil)
	articles.EXPECT().GetArticle(mock.Anything, int64(3)).Return(nil, nil)
	articles.EXPECT().DeleteArticle(mock.Anything, int64(3)).Return(nil)
	comments.EXPECT().ListComments(mock.Anything, int64(3)).Return(nil, nil)
	comments.EXPECT().DeleteComment(mock.Anything, int64(8)).Return(nil)
	images.EXPECT().Path("cover.png").Return("", storage.ErrImageNotFound)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/blogs", http.StatusOK},
		{http.MethodGet, "/api/blogs/3", http.StatusOK},
		{http.MethodDelete, "/api/blogs/delete/3", http.StatusOK},
		{http.MethodGet, "/api/comment/3", http.StatusOK},
		{http.MethodDelete, "/api/comment/delete/8", http.StatusOK},
		{http.MethodGet, "/api/cover.png", http.StatusNotFound},
		{http.MethodGet, "/health", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
