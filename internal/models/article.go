package models

import (
	"time"
)

// Article represents a full article row plus its derived comment count
type Article struct {
	ArticleID     int       `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	Body          string    `json:"body" db:"body"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int       `json:"comment_count" db:"comment_count"`
}

// ArticleSummary is an article as returned by the list endpoint: no body,
// but always carrying the computed comment count.
type ArticleSummary struct {
	ArticleID     int       `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int       `json:"comment_count" db:"comment_count"`
}

// ArticleSortFields defines the allowed sort_by values for the article list.
// comment_count sorts by the computed aggregate, everything else by the
// article column of the same name.
var ArticleSortFields = map[string]bool{
	"created_at":      true,
	"article_id":      true,
	"title":           true,
	"topic":           true,
	"author":          true,
	"votes":           true,
	"article_img_url": true,
	"comment_count":   true,
}

// VotesPatch is the body of a PATCH vote-adjustment request. A pointer
// distinguishes a missing inc_votes field from an explicit zero.
type VotesPatch struct {
	IncVotes *int `json:"inc_votes"`
}
