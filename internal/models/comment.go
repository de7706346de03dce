package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	Author    string    `json:"author" db:"author"`
	ArticleID int       `json:"article_id" db:"article_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewComment is the body of a POST comment request. Pointers distinguish
// missing fields from empty strings.
type NewComment struct {
	Body     *string `json:"body"`
	Username *string `json:"username"`
}
