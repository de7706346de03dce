package repository

import (
	"context"
	"database/sql"

	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle returns an article's comments, newest first
func (r *commentRepo) ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	query := `
		SELECT comment_id, body, votes, author, article_id, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(&c.CommentID, &c.Body, &c.Votes, &c.Author, &c.ArticleID, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Insert creates a comment with votes defaulted to 0 and created_at set by
// the store. Foreign-key violations from unknown users or articles are
// surfaced untranslated for the error pipeline to classify.
func (r *commentRepo) Insert(ctx context.Context, articleID, username, body string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, body, votes, author, article_id, created_at`

	var c models.Comment
	err := r.db.QueryRowContext(ctx, query, articleID, username, body).Scan(
		&c.CommentID, &c.Body, &c.Votes, &c.Author, &c.ArticleID, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a comment by id, reporting whether a row was removed
func (r *commentRepo) Delete(ctx context.Context, commentID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// IncrementVotes applies a signed delta to a comment's votes atomically
func (r *commentRepo) IncrementVotes(ctx context.Context, commentID string, delta int) (*models.Comment, error) {
	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, body, votes, author, article_id, created_at`

	var c models.Comment
	err := r.db.QueryRowContext(ctx, query, delta, commentID).Scan(
		&c.CommentID, &c.Body, &c.Votes, &c.Author, &c.ArticleID, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
