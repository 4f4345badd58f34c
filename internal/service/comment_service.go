package service

import (
	"context"
	"fmt"
	"log/slog"

	"blog-publisher/internal/domain"
	"blog-publisher/internal/logger"
	"blog-publisher/internal/metrics"
	"blog-publisher/internal/repository"
	"blog-publisher/internal/validator"
)

// CommentService handles comment reads and writes.
type CommentService struct {
	commentRepo repository.CommentRepository
	validator   *validator.Validator
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, v *validator.Validator) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		validator:   v,
	}
}

// ListComments returns the comments of one article in creation order.
func (s *CommentService) ListComments(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	comments, err := s.commentRepo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// CreateComment validates and inserts the comment, filling its id and date.
func (s *CommentService) CreateComment(ctx context.Context, comment *domain.Comment) (err error) {
	defer func() { metrics.ObserveMutation("comment", "create", err) }()

	if err := s.validator.ValidateComment(comment); err != nil {
		return err
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	logger.WithArticleID(comment.ArticleID).InfoContext(ctx, "Comment created",
		slog.Int64("comment_id", comment.ID),
		slog.String("commenter", comment.Commenter))
	return nil
}

// DeleteComment removes exactly one comment.
func (s *CommentService) DeleteComment(ctx context.Context, id int64) (err error) {
	defer func() { metrics.ObserveMutation("comment", "delete", err) }()

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	logger.InfoContext(ctx, "Comment deleted", slog.Int64("comment_id", id))
	return nil
}
