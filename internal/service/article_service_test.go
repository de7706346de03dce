package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nc-news-api/internal/mocks"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
	"github.com/nc-news-api/internal/service"
)

func setupServices() (*service.Services, *mocks.MockTopicRepository, *mocks.MockArticleRepository, *mocks.MockCommentRepository, *mocks.MockUserRepository, *mocks.MockChecker) {
	topicRepo := mocks.NewMockTopicRepository()
	articleRepo := mocks.NewMockArticleRepository()
	commentRepo := mocks.NewMockCommentRepository()
	userRepo := mocks.NewMockUserRepository()
	checker := mocks.NewMockChecker()

	services := service.NewServices(&repository.Repositories{
		Topic:   topicRepo,
		Article: articleRepo,
		Comment: commentRepo,
		User:    userRepo,
		Checker: checker,
	}, zerolog.Nop())

	return services, topicRepo, articleRepo, commentRepo, userRepo, checker
}

func TestListArticles_UnknownTopicIs404(t *testing.T) {
	services, _, articleRepo, _, _, _ := setupServices()

	// The main query succeeds with an empty result; the existence check must
	// still win and turn the response into a 404.
	articleRepo.Summaries = []models.ArticleSummary{}

	_, err := services.Article.ListArticles(context.Background(), "no-such-topic", "", "")
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", apiErr.Status)
	}
}

func TestListArticles_ExistingTopicWithNoArticles(t *testing.T) {
	services, _, _, _, _, checker := setupServices()
	checker.AddRow("topics", "slug", "paper")

	articles, err := services.Article.ListArticles(context.Background(), "paper", "", "")
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	if articles == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(articles) != 0 {
		t.Errorf("Expected no articles, got %d", len(articles))
	}
}

func TestListArticles_TopicFilterApplied(t *testing.T) {
	services, _, articleRepo, _, _, checker := setupServices()
	checker.AddRow("topics", "slug", "coding")
	articleRepo.Summaries = []models.ArticleSummary{
		{ArticleID: 1, Topic: "coding"},
		{ArticleID: 2, Topic: "football"},
		{ArticleID: 3, Topic: "coding"},
	}

	articles, err := services.Article.ListArticles(context.Background(), "coding", "", "")
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("Expected 2 coding articles, got %d", len(articles))
	}
	for _, a := range articles {
		if a.Topic != "coding" {
			t.Errorf("Expected topic 'coding', got %q", a.Topic)
		}
	}
}

func TestListArticles_NoTopicSkipsExistenceCheck(t *testing.T) {
	services, _, articleRepo, _, _, checker := setupServices()
	articleRepo.Summaries = []models.ArticleSummary{{ArticleID: 1}}

	articles, err := services.Article.ListArticles(context.Background(), "", "", "")
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("Expected 1 article, got %d", len(articles))
	}
	if len(checker.Calls) != 0 {
		t.Errorf("Expected no existence checks without a topic filter, got %v", checker.Calls)
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	services, _, _, _, _, _ := setupServices()

	_, err := services.Article.GetArticle(context.Background(), "999")
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", apiErr.Status)
	}
}

func TestUpdateArticleVotes_MissingIncVotes(t *testing.T) {
	services, _, articleRepo, _, _, _ := setupServices()
	articleRepo.Articles["1"] = &models.Article{ArticleID: 1, Votes: 10}
	articleRepo.IncrementVotesFunc = func(ctx context.Context, articleID string, delta int) (*models.Article, error) {
		t.Error("Store must not be touched when inc_votes is missing")
		return nil, nil
	}

	_, err := services.Article.UpdateArticleVotes(context.Background(), "1", &models.VotesPatch{})
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", apiErr.Status)
	}
}

func TestUpdateArticleVotes_NegativeDeltaGoesBelowZero(t *testing.T) {
	services, _, articleRepo, _, _, _ := setupServices()
	articleRepo.Articles["1"] = &models.Article{ArticleID: 1, Votes: 5}

	delta := -100
	article, err := services.Article.UpdateArticleVotes(context.Background(), "1", &models.VotesPatch{IncVotes: &delta})
	if err != nil {
		t.Fatalf("UpdateArticleVotes failed: %v", err)
	}
	if article.Votes != -95 {
		t.Errorf("Expected votes -95, got %d", article.Votes)
	}
}

func TestUpdateArticleVotes_UnknownArticle(t *testing.T) {
	services, _, _, _, _, _ := setupServices()

	delta := 1
	_, err := services.Article.UpdateArticleVotes(context.Background(), "999", &models.VotesPatch{IncVotes: &delta})
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", apiErr.Status)
	}
}
