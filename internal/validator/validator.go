package validator

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-publisher/internal/domain"
)

const (
	// MaxNameLength matches the VARCHAR(100) columns for titles, authors and commenters.
	MaxNameLength = 100
	// MaxCommentWords caps the length of a single comment.
	MaxCommentWords = 500
)

var allowedImageTypes = []interface{}{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticle validates an Article entity before it is stored.
func (v *Validator) ValidateArticle(a *domain.Article) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Title,
			validation.By(notBlank("title_required")),
			validation.RuneLength(0, MaxNameLength).Error("title_too_long"),
		),
		validation.Field(&a.Author,
			validation.By(notBlank("author_required")),
			validation.RuneLength(0, MaxNameLength).Error("author_too_long"),
		),
		validation.Field(&a.Body,
			validation.By(notBlank("article_required")),
		),
		validation.Field(&a.Image,
			validation.Required.Error("image_required"),
			validation.By(imageRefRule),
		),
	)
}

// ValidateImage validates the metadata of an uploaded image.
func (v *Validator) ValidateImage(ref *domain.ImageRef) error {
	return validation.ValidateStruct(ref,
		validation.Field(&ref.Filename,
			validation.Required.Error("filename_required"),
		),
		validation.Field(&ref.MimeType,
			validation.Required.Error("mimetype_required"),
			is.PrintableASCII.Error("invalid_mimetype"),
			validation.In(allowedImageTypes...).Error("unsupported_image_type"),
		),
	)
}

// ValidateComment validates a Comment entity.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Commenter,
			validation.By(notBlank("commenter_required")),
			validation.RuneLength(0, MaxNameLength).Error("commenter_too_long"),
		),
		validation.Field(&c.Body,
			validation.By(notBlank("comment_required")),
			validation.By(wordCountRule(MaxCommentWords)),
		),
		validation.Field(&c.ArticleID,
			validation.Required.Error("blog_id_required"),
			validation.Min(int64(1)).Error("invalid_blog_id"),
		),
	)
}

// notBlank is Required that also rejects whitespace-only strings.
func notBlank(code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return validation.NewError(code, code)
		}
		return nil
	}
}

func imageRefRule(value interface{}) error {
	s, ok := value.(string)
	if !ok || s == "" {
		return nil
	}
	if _, err := domain.ParseImageRef(s); err != nil {
		return validation.NewError("invalid_image", "invalid_image")
	}
	return nil
}

// wordCountRule creates a validation rule for max word count.
func wordCountRule(maxWords int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		wordCount := len(strings.Fields(strings.TrimSpace(s)))
		if wordCount > maxWords {
			return validation.NewError("comment_too_long", "comment_too_long")
		}
		return nil
	}
}

// FieldErrors flattens ozzo validation errors into a field -> reason map.
// It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return nil
	}
	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		fields[field] = fieldErr.Error()
	}
	return fields
}

// IsValidationError reports whether err carries field validation failures.
func IsValidationError(err error) bool {
	var ve validation.Errors
	return errors.As(err, &ve)
}
