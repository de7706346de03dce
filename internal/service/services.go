package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	ListArticles(ctx context.Context, topic, sortBy, order string) ([]models.ArticleSummary, error)
	GetArticle(ctx context.Context, articleID string) (*models.Article, error)
	UpdateArticleVotes(ctx context.Context, articleID string, patch *models.VotesPatch) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, articleID string, in *models.NewComment) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	UpdateCommentVotes(ctx context.Context, commentID string, patch *models.VotesPatch) (*models.Comment, error)
}

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	Article ArticleService
	Comment CommentService
	User    UserService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Topic:   newTopicService(repos.Topic, log),
		Article: newArticleService(repos.Article, repos.Checker, log),
		Comment: newCommentService(repos.Comment, repos.Checker, log),
		User:    newUserService(repos.User, log),
	}
}
