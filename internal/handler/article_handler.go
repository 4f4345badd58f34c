package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-publisher/internal/service"
	"blog-publisher/internal/storage"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// ListArticles handles GET /api/blogs
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.articleService.ListArticles(c.Request.Context())
	if err != nil {
		respondError(c, err, "list articles")
		return
	}

	response := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		response = append(response, toArticleResponse(&articles[i]))
	}
	c.JSON(http.StatusOK, rows(response...))
}

// GetArticle handles GET /api/blogs/:id
// A missing article yields an empty row set rather than a 404.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve article")
		return
	}

	if article == nil {
		c.JSON(http.StatusOK, rows[ArticleResponse]())
		return
	}
	c.JSON(http.StatusOK, rows(toArticleResponse(article)))
}

// CreateArticle handles POST /api/blogs/create
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	input, closeImage, err := articleInputFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image upload"})
		return
	}
	defer closeImage()

	article, err := h.articleService.CreateArticle(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "create article")
		return
	}

	c.JSON(http.StatusCreated, rows(toArticleResponse(article)))
}

// UpdateArticle handles PUT /api/blogs/edit/:id
// The image part is optional; without it the stored image is kept.
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	input, closeImage, err := articleInputFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image upload"})
		return
	}
	defer closeImage()

	article, err := h.articleService.UpdateArticle(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "update article")
		return
	}

	c.JSON(http.StatusOK, rows(toArticleResponse(article)))
}

// DeleteArticle handles DELETE /api/blogs/delete/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// articleInputFromForm reads the multipart article fields and the optional image part.
// The returned func closes the image file and is safe to call when there is none.
func articleInputFromForm(c *gin.Context) (service.ArticleInput, func(), error) {
	input := service.ArticleInput{
		Title:  c.PostForm("title"),
		Author: c.PostForm("author"),
		Body:   c.PostForm("article"),
	}
	noop := func() {}

	header, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return input, noop, nil
	}
	if err != nil {
		return input, noop, err
	}

	file, err := header.Open()
	if err != nil {
		return input, noop, err
	}

	input.Image = &storage.Upload{
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Reader:       file,
	}
	return input, func() { _ = file.Close() }, nil
}
