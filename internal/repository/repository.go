package repository

import (
	"context"

	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// ArticleRepository defines the interface for article data operations.
// Identifier arguments are passed through as raw strings so that malformed
// ids surface as driver type errors, which the error pipeline maps to 400.
type ArticleRepository interface {
	List(ctx context.Context, topic, sortBy, order string) ([]models.ArticleSummary, error)
	GetByID(ctx context.Context, articleID string) (*models.Article, error)
	IncrementVotes(ctx context.Context, articleID string, delta int) (*models.Article, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error)
	Insert(ctx context.Context, articleID, username, body string) (*models.Comment, error)
	Delete(ctx context.Context, commentID string) (bool, error)
	IncrementVotes(ctx context.Context, commentID string, delta int) (*models.Comment, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// ExistenceChecker confirms that a referenced row exists, so that services
// can report a missing reference as 404 instead of an empty result
type ExistenceChecker interface {
	Exists(ctx context.Context, table, column, value string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	Article ArticleRepository
	Comment CommentRepository
	User    UserRepository
	Checker ExistenceChecker
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		User:    NewUserRepo(db),
		Checker: NewChecker(db),
	}
}
