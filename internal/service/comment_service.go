package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	checker  repository.ExistenceChecker
	log      zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, checker repository.ExistenceChecker, log zerolog.Logger) CommentService {
	return &commentService{
		comments: comments,
		checker:  checker,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// ListByArticle returns an article's comments, newest first. The article's
// existence is checked in parallel with the comments query so a missing
// article is a 404 while an existing article with no comments is an empty
// list.
func (s *commentService) ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	g, gctx := errgroup.WithContext(ctx)

	var comments []models.Comment
	g.Go(func() error {
		var err error
		comments, err = s.comments.ListByArticle(gctx, articleID)
		return err
	})
	g.Go(func() error {
		return s.checker.Exists(gctx, "articles", "article_id", articleID)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment inserts a comment after rejecting requests missing body or
// username. The insert runs alongside the article existence check; an
// unknown username or article fails the insert's foreign keys and is
// classified downstream as 404.
func (s *commentService) CreateComment(ctx context.Context, articleID string, in *models.NewComment) (*models.Comment, error) {
	if in == nil || in.Body == nil || in.Username == nil {
		return nil, models.ErrBadRequest()
	}

	g, gctx := errgroup.WithContext(ctx)

	var comment *models.Comment
	g.Go(func() error {
		var err error
		comment, err = s.comments.Insert(gctx, articleID, *in.Username, *in.Body)
		return err
	})
	g.Go(func() error {
		return s.checker.Exists(gctx, "articles", "article_id", articleID)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment by id, failing 404 when no row matched
func (s *commentService) DeleteComment(ctx context.Context, commentID string) error {
	deleted, err := s.comments.Delete(ctx, commentID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.ErrNotFound()
	}
	return nil
}

// UpdateCommentVotes applies a signed vote delta to a comment
func (s *commentService) UpdateCommentVotes(ctx context.Context, commentID string, patch *models.VotesPatch) (*models.Comment, error) {
	if patch == nil || patch.IncVotes == nil {
		return nil, models.ErrBadRequest()
	}

	comment, err := s.comments.IncrementVotes(ctx, commentID, *patch.IncVotes)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, models.ErrNotFound()
	}
	return comment, nil
}
