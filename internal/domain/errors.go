package domain

import "errors"

var (
	// ErrArticleNotFound is returned when no article has the requested id.
	ErrArticleNotFound = errors.New("article not found")
	// ErrCommentNotFound is returned when no comment has the requested id.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrInvalidImage is returned when an image reference cannot be decoded.
	ErrInvalidImage = errors.New("invalid image reference")
)
