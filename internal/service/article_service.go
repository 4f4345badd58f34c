package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"blog-publisher/internal/domain"
	"blog-publisher/internal/logger"
	"blog-publisher/internal/metrics"
	"blog-publisher/internal/repository"
	"blog-publisher/internal/storage"
	"blog-publisher/internal/validator"
)

// ErrImageRequired is returned when an article is created without an image.
var ErrImageRequired = errors.New("image is required")

// ArticleService handles article reads and writes together with their images.
type ArticleService struct {
	articleRepo repository.ArticleRepository
	images      storage.ImageStore
	validator   *validator.Validator
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo repository.ArticleRepository, images storage.ImageStore, v *validator.Validator) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		images:      images,
		validator:   v,
	}
}

// ListArticles returns every article, newest first.
func (s *ArticleService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.articleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// GetArticle returns the article, or nil if it does not exist.
func (s *ArticleService) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// CreateArticle stores the image and inserts the article.
func (s *ArticleService) CreateArticle(ctx context.Context, input ArticleInput) (article *domain.Article, err error) {
	defer func() { metrics.ObserveMutation("article", "create", err) }()

	if input.Image == nil {
		return nil, ErrImageRequired
	}

	article = &domain.Article{
		Title:  input.Title,
		Author: input.Author,
		Body:   input.Body,
	}

	ref, err := s.storeImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}
	if article.Image, err = ref.Encode(); err != nil {
		s.discardImage(ref.Filename)
		return nil, err
	}

	if err := s.validator.ValidateArticle(article); err != nil {
		s.discardImage(ref.Filename)
		return nil, err
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		s.discardImage(ref.Filename)
		return nil, fmt.Errorf("create article: %w", err)
	}

	logger.WithArticleID(article.ID).InfoContext(ctx, "Article created",
		slog.String("title", article.Title),
		slog.String("image", ref.Filename))
	return article, nil
}

// UpdateArticle edits an existing article, replacing the image when one is given.
func (s *ArticleService) UpdateArticle(ctx context.Context, id int64, input ArticleInput) (article *domain.Article, err error) {
	defer func() { metrics.ObserveMutation("article", "update", err) }()

	article, err = s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("update article %d: %w", id, domain.ErrArticleNotFound)
	}

	oldImage := article.Image
	article.Title = input.Title
	article.Author = input.Author
	article.Body = input.Body

	var newImage string
	if input.Image != nil {
		ref, err := s.storeImage(ctx, input.Image)
		if err != nil {
			return nil, err
		}
		newImage = ref.Filename
		if article.Image, err = ref.Encode(); err != nil {
			s.discardImage(newImage)
			return nil, err
		}
	}

	if err := s.validator.ValidateArticle(article); err != nil {
		s.discardImage(newImage)
		return nil, err
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		s.discardImage(newImage)
		return nil, fmt.Errorf("update article: %w", err)
	}

	if newImage != "" {
		if ref, err := domain.ParseImageRef(oldImage); err == nil {
			s.discardImage(ref.Filename)
		}
	}

	logger.WithArticleID(article.ID).InfoContext(ctx, "Article updated",
		slog.Bool("image_replaced", newImage != ""))
	return article, nil
}

// DeleteArticle removes the article, its comments and its image.
func (s *ArticleService) DeleteArticle(ctx context.Context, id int64) (err error) {
	defer func() { metrics.ObserveMutation("article", "delete", err) }()

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return fmt.Errorf("delete article %d: %w", id, domain.ErrArticleNotFound)
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	if ref, err := article.ImageRef(); err == nil {
		s.discardImage(ref.Filename)
	}

	logger.WithArticleID(id).InfoContext(ctx, "Article deleted")
	return nil
}

// storeImage checks the upload's declared type and writes it to the image store.
func (s *ArticleService) storeImage(ctx context.Context, upload *storage.Upload) (domain.ImageRef, error) {
	declared := domain.ImageRef{Filename: upload.OriginalName, MimeType: upload.MimeType}
	if err := s.validator.ValidateImage(&declared); err != nil {
		return domain.ImageRef{}, err
	}

	ref, err := s.images.Save(ctx, *upload)
	if err != nil {
		return domain.ImageRef{}, fmt.Errorf("store image: %w", err)
	}
	return ref, nil
}

// discardImage removes an image that is no longer referenced. Failures are only logged.
func (s *ArticleService) discardImage(filename string) {
	if filename == "" {
		return
	}
	if err := s.images.Delete(filename); err != nil {
		logger.Warn("Failed to remove image",
			slog.String("image", filename),
			slog.String("error", err.Error()))
	}
}
