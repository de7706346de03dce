package mocks

import (
	"context"

	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/service"
)

// MockTopicService is a mock implementation of TopicService
type MockTopicService struct {
	Topics         []models.Topic
	ListTopicsFunc func(ctx context.Context) ([]models.Topic, error)
}

// Verify interface compliance
var _ service.TopicService = (*MockTopicService)(nil)

func NewMockTopicService() *MockTopicService {
	return &MockTopicService{Topics: []models.Topic{}}
}

func (m *MockTopicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	if m.ListTopicsFunc != nil {
		return m.ListTopicsFunc(ctx)
	}
	return m.Topics, nil
}

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	Summaries []models.ArticleSummary
	Articles  map[string]*models.Article

	ListArticlesFunc       func(ctx context.Context, topic, sortBy, order string) ([]models.ArticleSummary, error)
	GetArticleFunc         func(ctx context.Context, articleID string) (*models.Article, error)
	UpdateArticleVotesFunc func(ctx context.Context, articleID string, patch *models.VotesPatch) (*models.Article, error)
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{
		Summaries: []models.ArticleSummary{},
		Articles:  make(map[string]*models.Article),
	}
}

func (m *MockArticleService) ListArticles(ctx context.Context, topic, sortBy, order string) ([]models.ArticleSummary, error) {
	if m.ListArticlesFunc != nil {
		return m.ListArticlesFunc(ctx, topic, sortBy, order)
	}
	return m.Summaries, nil
}

func (m *MockArticleService) GetArticle(ctx context.Context, articleID string) (*models.Article, error) {
	if m.GetArticleFunc != nil {
		return m.GetArticleFunc(ctx, articleID)
	}
	if article, ok := m.Articles[articleID]; ok {
		return article, nil
	}
	return nil, models.ErrNotFound()
}

func (m *MockArticleService) UpdateArticleVotes(ctx context.Context, articleID string, patch *models.VotesPatch) (*models.Article, error) {
	if m.UpdateArticleVotesFunc != nil {
		return m.UpdateArticleVotesFunc(ctx, articleID, patch)
	}
	if patch == nil || patch.IncVotes == nil {
		return nil, models.ErrBadRequest()
	}
	article, ok := m.Articles[articleID]
	if !ok {
		return nil, models.ErrNotFound()
	}
	article.Votes += *patch.IncVotes
	return article, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	Comments map[string][]models.Comment

	ListByArticleFunc      func(ctx context.Context, articleID string) ([]models.Comment, error)
	CreateCommentFunc      func(ctx context.Context, articleID string, in *models.NewComment) (*models.Comment, error)
	DeleteCommentFunc      func(ctx context.Context, commentID string) error
	UpdateCommentVotesFunc func(ctx context.Context, commentID string, patch *models.VotesPatch) (*models.Comment, error)
}

// Verify interface compliance
var _ service.CommentService = (*MockCommentService)(nil)

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{Comments: make(map[string][]models.Comment)}
}

func (m *MockCommentService) ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	if m.ListByArticleFunc != nil {
		return m.ListByArticleFunc(ctx, articleID)
	}
	comments, ok := m.Comments[articleID]
	if !ok {
		return nil, models.ErrNotFound()
	}
	return comments, nil
}

func (m *MockCommentService) CreateComment(ctx context.Context, articleID string, in *models.NewComment) (*models.Comment, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, articleID, in)
	}
	if in == nil || in.Body == nil || in.Username == nil {
		return nil, models.ErrBadRequest()
	}
	comment := models.Comment{CommentID: 1, Body: *in.Body, Author: *in.Username}
	m.Comments[articleID] = append(m.Comments[articleID], comment)
	return &comment, nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID string) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, commentID)
	}
	return nil
}

func (m *MockCommentService) UpdateCommentVotes(ctx context.Context, commentID string, patch *models.VotesPatch) (*models.Comment, error) {
	if m.UpdateCommentVotesFunc != nil {
		return m.UpdateCommentVotesFunc(ctx, commentID, patch)
	}
	if patch == nil || patch.IncVotes == nil {
		return nil, models.ErrBadRequest()
	}
	return &models.Comment{CommentID: 1, Votes: *patch.IncVotes}, nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	Users []models.User

	ListUsersFunc func(ctx context.Context) ([]models.User, error)
	GetUserFunc   func(ctx context.Context, username string) (*models.User, error)
}

// Verify interface compliance
var _ service.UserService = (*MockUserService)(nil)

func NewMockUserService() *MockUserService {
	return &MockUserService{Users: []models.User{}}
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return m.Users, nil
}

func (m *MockUserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, username)
	}
	for i := range m.Users {
		if m.Users[i].Username == username {
			return &m.Users[i], nil
		}
	}
	return nil, models.ErrNotFound()
}
