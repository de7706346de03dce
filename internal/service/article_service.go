package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	checker  repository.ExistenceChecker
	log      zerolog.Logger
}

func newArticleService(articles repository.ArticleRepository, checker repository.ExistenceChecker, log zerolog.Logger) ArticleService {
	return &articleService{
		articles: articles,
		checker:  checker,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// ListArticles returns article summaries for the requested filter and order.
// When a topic filter is present the topic's existence is verified in
// parallel with the main query: a missing topic must come back as 404, never
// as a silently empty list, while an existing topic with no articles is an
// empty list with no error.
func (s *articleService) ListArticles(ctx context.Context, topic, sortBy, order string) ([]models.ArticleSummary, error) {
	if topic == "" {
		return s.articles.List(ctx, topic, sortBy, order)
	}

	g, gctx := errgroup.WithContext(ctx)

	var articles []models.ArticleSummary
	g.Go(func() error {
		var err error
		articles, err = s.articles.List(gctx, topic, sortBy, order)
		return err
	})
	g.Go(func() error {
		return s.checker.Exists(gctx, "topics", "slug", topic)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticle returns one article with body and comment count
func (s *articleService) GetArticle(ctx context.Context, articleID string) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, models.ErrNotFound()
	}
	return article, nil
}

// UpdateArticleVotes applies a signed vote delta to an article. A request
// with no inc_votes field is rejected before the row is touched.
func (s *articleService) UpdateArticleVotes(ctx context.Context, articleID string, patch *models.VotesPatch) (*models.Article, error) {
	if patch == nil || patch.IncVotes == nil {
		return nil, models.ErrBadRequest()
	}

	article, err := s.articles.IncrementVotes(ctx, articleID, *patch.IncVotes)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, models.ErrNotFound()
	}
	return article, nil
}
