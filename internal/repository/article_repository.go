package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-publisher/internal/domain"
	"blog-publisher/internal/metrics"
)

const articleColumns = `blog_id, title, author, article, date, image`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// List returns every article, newest first.
func (r *PostgresArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	defer metrics.ObserveQuery("article", "list", metrics.NewTimer())

	rows, err := r.pool.Query(ctx, `
		SELECT `+articleColumns+`
		FROM blog
		ORDER BY date DESC, blog_id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		var a domain.Article
		if err := scanArticle(rows, &a); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

// GetByID returns the article with the given id, or nil if there is none.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	defer metrics.ObserveQuery("article", "get", metrics.NewTimer())

	var a domain.Article
	err := scanArticle(r.pool.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM blog
		WHERE blog_id = $1
	`, id), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return &a, nil
}

// Create inserts the article and fills in its server-assigned id and date.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	defer metrics.ObserveQuery("article", "create", metrics.NewTimer())

	err := r.pool.QueryRow(ctx, `
		INSERT INTO blog (title, author, article, image)
		VALUES ($1, $2, $3, $4)
		RETURNING blog_id, date
	`, article.Title, article.Author, article.Body, article.Image).Scan(&article.ID, &article.Date)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// Update overwrites the editable fields of an existing article.
func (r *PostgresArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	defer metrics.ObserveQuery("article", "update", metrics.NewTimer())

	err := r.pool.QueryRow(ctx, `
		UPDATE blog
		SET title = $2, author = $3, article = $4, image = $5
		WHERE blog_id = $1
		RETURNING date
	`, article.ID, article.Title, article.Author, article.Body, article.Image).Scan(&article.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update article %d: %w", article.ID, domain.ErrArticleNotFound)
	}
	if err != nil {
		return fmt.Errorf("update article %d: %w", article.ID, err)
	}
	return nil
}

// Delete removes the article; its comments go with it through ON DELETE CASCADE.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id int64) error {
	defer metrics.ObserveQuery("article", "delete", metrics.NewTimer())

	tag, err := r.pool.Exec(ctx, `DELETE FROM blog WHERE blog_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete article %d: %w", id, domain.ErrArticleNotFound)
	}
	return nil
}

func scanArticle(row pgx.Row, a *domain.Article) error {
	return row.Scan(&a.ID, &a.Title, &a.Author, &a.Body, &a.Date, &a.Image)
}
