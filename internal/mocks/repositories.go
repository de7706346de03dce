package mocks

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
)

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics   []models.Topic
	ListFunc func(ctx context.Context) ([]models.Topic, error)
}

// Verify interface compliance
var _ repository.TopicRepository = (*MockTopicRepository)(nil)

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{Topics: []models.Topic{}}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return m.Topics, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Summaries []models.ArticleSummary
	Articles  map[string]*models.Article

	ListFunc           func(ctx context.Context, topic, sortBy, order string) ([]models.ArticleSummary, error)
	GetByIDFunc        func(ctx context.Context, articleID string) (*models.Article, error)
	IncrementVotesFunc func(ctx context.Context, articleID string, delta int) (*models.Article, error)
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Summaries: []models.ArticleSummary{},
		Articles:  make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) List(ctx context.Context, topic, sortBy, order string) ([]models.ArticleSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, topic, sortBy, order)
	}
	if topic == "" {
		return m.Summaries, nil
	}
	filtered := []models.ArticleSummary{}
	for _, a := range m.Summaries {
		if a.Topic == topic {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, articleID string) (*models.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, articleID)
	}
	return m.Articles[articleID], nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, articleID string, delta int) (*models.Article, error) {
	if m.IncrementVotesFunc != nil {
		return m.IncrementVotesFunc(ctx, articleID, delta)
	}
	article, ok := m.Articles[articleID]
	if !ok {
		return nil, nil
	}
	article.Votes += delta
	return article, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mu       sync.Mutex
	Comments map[string]*models.Comment
	nextID   int

	ListByArticleFunc  func(ctx context.Context, articleID string) ([]models.Comment, error)
	InsertFunc         func(ctx context.Context, articleID, username, body string) (*models.Comment, error)
	DeleteFunc         func(ctx context.Context, commentID string) (bool, error)
	IncrementVotesFunc func(ctx context.Context, commentID string, delta int) (*models.Comment, error)
}

// Verify interface compliance
var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
		nextID:   1,
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	if m.ListByArticleFunc != nil {
		return m.ListByArticleFunc(ctx, articleID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id, err := strconv.Atoi(articleID)
	if err != nil {
		return nil, err
	}
	comments := []models.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == id {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (m *MockCommentRepository) Insert(ctx context.Context, articleID, username, body string) (*models.Comment, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, articleID, username, body)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id, err := strconv.Atoi(articleID)
	if err != nil {
		return nil, err
	}
	comment := &models.Comment{
		CommentID: m.nextID,
		Body:      body,
		Author:    username,
		ArticleID: id,
	}
	m.Comments[strconv.Itoa(m.nextID)] = comment
	m.nextID++
	return comment, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Comments[commentID]; !ok {
		return false, nil
	}
	delete(m.Comments, commentID)
	return true, nil
}

func (m *MockCommentRepository) IncrementVotes(ctx context.Context, commentID string, delta int) (*models.Comment, error) {
	if m.IncrementVotesFunc != nil {
		return m.IncrementVotesFunc(ctx, commentID, delta)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	comment, ok := m.Comments[commentID]
	if !ok {
		return nil, nil
	}
	comment.Votes += delta
	return comment, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users []models.User

	ListFunc          func(ctx context.Context) ([]models.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
}

// Verify interface compliance
var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: []models.User{}}
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return m.Users, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	for i := range m.Users {
		if m.Users[i].Username == username {
			return &m.Users[i], nil
		}
	}
	return nil, nil
}

// MockChecker is a mock implementation of ExistenceChecker. Rows holds
// "table.column:value" keys for rows that exist.
type MockChecker struct {
	Rows       map[string]bool
	ExistsFunc func(ctx context.Context, table, column, value string) error
	Calls      []string
	mu         sync.Mutex
}

// Verify interface compliance
var _ repository.ExistenceChecker = (*MockChecker)(nil)

func NewMockChecker() *MockChecker {
	return &MockChecker{Rows: make(map[string]bool)}
}

// AddRow registers a row so existence checks against it succeed
func (m *MockChecker) AddRow(table, column, value string) {
	m.Rows[fmt.Sprintf("%s.%s:%s", table, column, value)] = true
}

func (m *MockChecker) Exists(ctx context.Context, table, column, value string) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, fmt.Sprintf("%s.%s:%s", table, column, value))
	m.mu.Unlock()

	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, table, column, value)
	}
	if m.Rows[fmt.Sprintf("%s.%s:%s", table, column, value)] {
		return nil
	}
	return models.ErrNotFound()
}
