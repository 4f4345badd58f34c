package service

import (
	"context"

	"blog-publisher/internal/domain"
	"blog-publisher/internal/storage"
)

// ArticleInput carries the editable fields of an article.
// Image is required on create and optional on update.
type ArticleInput struct {
	Title  string
	Author string
	Body   string
	Image  *storage.Upload
}

// ArticleServiceInterface defines the interface for article operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// ListArticles returns every article, newest first.
	ListArticles(ctx context.Context) ([]domain.Article, error)
	// GetArticle returns the article, or nil if it does not exist.
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	// CreateArticle stores the image and inserts the article.
	CreateArticle(ctx context.Context, input ArticleInput) (*domain.Article, error)
	// UpdateArticle edits an existing article, replacing the image when one is given.
	UpdateArticle(ctx context.Context, id int64, input ArticleInput) (*domain.Article, error)
	// DeleteArticle removes the article, its comments and its image.
	DeleteArticle(ctx context.Context, id int64) error
}

// CommentServiceInterface defines the interface for comment operations.
type CommentServiceInterface interface {
	// ListComments returns the comments of one article in creation order.
	ListComments(ctx context.Context, articleID int64) ([]domain.Comment, error)
	// CreateComment validates and inserts the comment, filling its id and date.
	CreateComment(ctx context.Context, comment *domain.Comment) error
	// DeleteComment removes exactly one comment.
	DeleteComment(ctx context.Context, id int64) error
}
