package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-publisher/internal/domain"
	"blog-publisher/internal/metrics"
)

// foreignKeyViolation is the SQLSTATE PostgreSQL raises for a missing parent row.
const foreignKeyViolation = "23503"

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// ListByArticle returns the comments of one article in the order they were written.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	defer metrics.ObserveQuery("comment", "list", metrics.NewTimer())

	rows, err := r.pool.Query(ctx, `
		SELECT comment_id, blog_id, commenter, comment, date
		FROM comment
		WHERE blog_id = $1
		ORDER BY date, comment_id
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Commenter, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

// Create inserts the comment and fills in its server-assigned id and timestamp.
// A comment on a missing article fails with domain.ErrArticleNotFound.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	defer metrics.ObserveQuery("comment", "create", metrics.NewTimer())

	err := r.pool.QueryRow(ctx, `
		INSERT INTO comment (blog_id, commenter, comment)
		VALUES ($1, $2, $3)
		RETURNING comment_id, date
	`, comment.ArticleID, comment.Commenter, comment.Body).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return fmt.Errorf("insert comment: %w", domain.ErrArticleNotFound)
		}
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// Delete removes exactly one comment.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id int64) error {
	defer metrics.ObserveQuery("comment", "delete", metrics.NewTimer())

	tag, err := r.pool.Exec(ctx, `DELETE FROM comment WHERE comment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete comment %d: %w", id, domain.ErrCommentNotFound)
	}
	return nil
}
