package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
)

// topicService is the concrete implementation of TopicService
type topicService struct {
	topics repository.TopicRepository
	log    zerolog.Logger
}

func newTopicService(topics repository.TopicRepository, log zerolog.Logger) TopicService {
	return &topicService{
		topics: topics,
		log:    log.With().Str("service", "topic").Logger(),
	}
}

// ListTopics returns all topics
func (s *topicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topics.List(ctx)
}
