package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-publisher/internal/storage"
)

// ImageHandler serves stored article images.
type ImageHandler struct {
	images storage.ImageStore
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(images storage.ImageStore) *ImageHandler {
	return &ImageHandler{images: images}
}

// GetImage handles GET /api/:filename
func (h *ImageHandler) GetImage(c *gin.Context) {
	path, err := h.images.Path(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "image not found"})
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.File(path)
}
