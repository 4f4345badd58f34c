package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Article represents a published blog post.
type Article struct {
	ID     int64     `json:"blog_id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	Body   string    `json:"article"`
	Date   time.Time `json:"date"`
	Image  string    `json:"image"`
}

// ImageRef is the decoded form of Article.Image.
type ImageRef struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalname,omitempty"`
	MimeType     string `json:"mimetype,omitempty"`
	Size         int64  `json:"size,omitempty"`
}

// ParseImageRef decodes the JSON stored in the image column.
func ParseImageRef(raw string) (ImageRef, error) {
	var ref ImageRef
	if strings.TrimSpace(raw) == "" {
		return ref, ErrInvalidImage
	}
	if err := json.Unmarshal([]byte(raw), &ref); err != nil {
		return ref, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if ref.Filename == "" {
		return ref, fmt.Errorf("%w: missing filename", ErrInvalidImage)
	}
	return ref, nil
}

// Encode returns the JSON form stored in the image column.
func (r ImageRef) Encode() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode image ref: %w", err)
	}
	return string(b), nil
}

// ImageRef decodes the article's stored image reference.
func (a *Article) ImageRef() (ImageRef, error) {
	return ParseImageRef(a.Image)
}
