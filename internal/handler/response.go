package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-publisher/internal/domain"
	"blog-publisher/internal/logger"
	"blog-publisher/internal/service"
	"blog-publisher/internal/storage"
	"blog-publisher/internal/validator"
)

// RowsResponse wraps every list-shaped API payload.
type RowsResponse[T any] struct {
	Rows []T `json:"rows"`
}

func rows[T any](items ...T) RowsResponse[T] {
	if items == nil {
		items = []T{}
	}
	return RowsResponse[T]{Rows: items}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID      int64  `json:"blog_id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Article string `json:"article"`
	Date    string `json:"date"`
	Image   string `json:"image"`
}

func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:      a.ID,
		Title:   a.Title,
		Author:  a.Author,
		Article: a.Body,
		Date:    a.Date.Format(DateFormat),
		Image:   a.Image,
	}
}

// CommentResponse represents a comment in the API response.
type CommentResponse struct {
	ID        int64  `json:"comment_id"`
	BlogID    int64  `json:"blog_id"`
	Commenter string `json:"commenter"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}

func toCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		BlogID:    c.ArticleID,
		Commenter: c.Commenter,
		Comment:   c.Body,
		Date:      c.CreatedAt.Format(TimeFormat),
	}
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// parseID reads a positive integer path parameter, writing a 400 when it is not one.
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: param + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

// respondError maps service errors to HTTP responses.
func respondError(c *gin.Context, err error, action string) {
	switch {
	case validator.IsValidationError(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: validator.FieldErrors(err)})
	case errors.Is(err, service.ErrImageRequired):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image is required"})
	case errors.Is(err, storage.ErrUnsupportedImage):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image must be a jpeg, png, gif or webp file"})
	case errors.Is(err, domain.ErrArticleNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "article not found"})
	case errors.Is(err, domain.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "comment not found"})
	default:
		logger.ErrorContext(c.Request.Context(), "Request failed",
			slog.String("action", action),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to " + action})
	}
}
