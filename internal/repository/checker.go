package repository

import (
	"context"
	"fmt"

	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
)

// existenceQueries enumerates the reference lookups services may make. Table
// and column identifiers are baked into these statements; only the value is
// parameterized, so unsanitized client input can never select an identifier.
var existenceQueries = map[string]string{
	"topics.slug":         `SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)`,
	"users.username":      `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
	"articles.article_id": `SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)`,
	"comments.comment_id": `SELECT EXISTS(SELECT 1 FROM comments WHERE comment_id = $1)`,
}

// checker is the concrete implementation of ExistenceChecker
type checker struct {
	db *database.DB
}

// NewChecker creates a new existence checker
func NewChecker(db *database.DB) ExistenceChecker {
	return &checker{db: db}
}

// Exists reports nil when table has a row whose column equals value, and a
// 404-class error when it does not. A table/column pair outside the trusted
// set is a programming error and fails as such.
func (c *checker) Exists(ctx context.Context, table, column, value string) error {
	query, ok := existenceQueries[table+"."+column]
	if !ok {
		return fmt.Errorf("existence check not supported for %s.%s", table, column)
	}

	var exists bool
	if err := c.db.QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return models.ErrNotFound()
	}
	return nil
}
