package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-publisher/internal/domain"
	"blog-publisher/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateCommentRequest is the JSON body of POST /api/comment/create.
type CreateCommentRequest struct {
	Commenter string   `json:"commenter"`
	Comment   string   `json:"comment"`
	BlogID    stringID `json:"blog_id"`
}

// stringID accepts an id sent either as a JSON number or as a numeric string.
type stringID int64

func (id *stringID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("blog_id %q is not an integer", data)
	}
	*id = stringID(v)
	return nil
}

// ListComments handles GET /api/comment/:id
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID, ok := parseID(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), articleID)
	if err != nil {
		respondError(c, err, "list comments")
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, toCommentResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, rows(response...))
}

// CreateComment handles POST /api/comment/create
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	comment := &domain.Comment{
		ArticleID: int64(req.BlogID),
		Commenter: req.Commenter,
		Body:      req.Comment,
	}
	if err := h.commentService.CreateComment(c.Request.Context(), comment); err != nil {
		respondError(c, err, "create comment")
		return
	}

	c.JSON(http.StatusCreated, rows(toCommentResponse(comment)))
}

// DeleteComment handles DELETE /api/comment/delete/:commentId
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
