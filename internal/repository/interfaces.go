package repository

import (
	"context"

	"blog-publisher/internal/domain"
)

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	List(ctx context.Context) ([]domain.Article, error)
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	Create(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id int64) error
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id int64) error
}
