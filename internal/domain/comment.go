package domain

import "time"

// Comment is a reader-submitted note attached to exactly one article.
type Comment struct {
	ID        int64     `json:"comment_id"`
	ArticleID int64     `json:"blog_id"`
	Commenter string    `json:"commenter"`
	Body      string    `json:"comment"`
	CreatedAt time.Time `json:"date"`
}
