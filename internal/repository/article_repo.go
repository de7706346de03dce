package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
)

// sortColumns maps each allowed sort_by value to the trusted column
// expression it selects. Column identifiers cannot be parameterized the way
// values can, so client input never reaches the query text directly; a
// request can only pick an entry from this map.
var sortColumns = map[string]string{
	"created_at":      "articles.created_at",
	"article_id":      "articles.article_id",
	"title":           "articles.title",
	"topic":           "articles.topic",
	"author":          "articles.author",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

// orderKeywords maps the two accepted order values to fixed SQL keywords
var orderKeywords = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// buildListQuery validates sortBy and order against the allow-lists and
// assembles the aggregation query. It runs entirely before any SQL executes;
// a disallowed value fails here with a 400-class error.
func buildListQuery(topic, sortBy, order string) (string, []interface{}, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if order == "" {
		order = "desc"
	}

	sortExpr, ok := sortColumns[sortBy]
	if !ok {
		return "", nil, models.ErrBadRequest()
	}
	orderKeyword, ok := orderKeywords[order]
	if !ok {
		return "", nil, models.ErrBadRequest()
	}

	query := `
		SELECT articles.article_id, articles.title, articles.topic, articles.author,
			articles.created_at, articles.votes, articles.article_img_url,
			COUNT(comments.comment_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id`

	var args []interface{}
	if topic != "" {
		query += `
		WHERE articles.topic = $1`
		args = append(args, topic)
	}

	query += fmt.Sprintf(`
		GROUP BY articles.article_id
		ORDER BY %s %s`, sortExpr, orderKeyword)

	return query, args, nil
}

// List returns article summaries filtered by topic and ordered by the
// requested field. A valid topic with no articles yields an empty slice.
func (r *articleRepo) List(ctx context.Context, topic, sortBy, order string) ([]models.ArticleSummary, error) {
	query, args, err := buildListQuery(topic, sortBy, order)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []models.ArticleSummary{}
	for rows.Next() {
		var a models.ArticleSummary
		err := rows.Scan(
			&a.ArticleID, &a.Title, &a.Topic, &a.Author,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetByID retrieves one article with its body and live comment count
func (r *articleRepo) GetByID(ctx context.Context, articleID string) (*models.Article, error) {
	query := `
		SELECT articles.article_id, articles.title, articles.topic, articles.author,
			articles.body, articles.created_at, articles.votes, articles.article_img_url,
			COUNT(comments.comment_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id`

	var a models.Article
	err := r.db.QueryRowContext(ctx, query, articleID).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author,
		&a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// IncrementVotes applies a signed delta to an article's votes in a single
// statement, so concurrent adjustments never lose an update. The updated row
// is returned with its comment count recomputed.
func (r *articleRepo) IncrementVotes(ctx context.Context, articleID string, delta int) (*models.Article, error) {
	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url,
			(SELECT COUNT(*)::INT FROM comments WHERE comments.article_id = articles.article_id) AS comment_count`

	var a models.Article
	err := r.db.QueryRowContext(ctx, query, delta, articleID).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author,
		&a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
