package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/nc-news-api/internal/models"
)

func TestListUsers(t *testing.T) {
	services, _, _, _, userRepo, _ := setupServices()
	userRepo.Users = []models.User{
		{Username: "butter_bridge", Name: "jonny"},
		{Username: "lurker", Name: "do_nothing"},
	}

	users, err := services.User.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("Expected 2 users, got %d", len(users))
	}
}

func TestGetUser_NotFound(t *testing.T) {
	services, _, _, _, _, _ := setupServices()

	_, err := services.User.GetUser(context.Background(), "nobody")
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", apiErr.Status)
	}
}

func TestGetUser_Found(t *testing.T) {
	services, _, _, _, userRepo, _ := setupServices()
	userRepo.Users = []models.User{{Username: "rogersop", Name: "paul"}}

	user, err := services.User.GetUser(context.Background(), "rogersop")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.Name != "paul" {
		t.Errorf("Expected name 'paul', got %q", user.Name)
	}
}

func TestListTopics(t *testing.T) {
	services, topicRepo, _, _, _, _ := setupServices()
	topicRepo.Topics = []models.Topic{
		{Slug: "coding", Description: "Code is love, code is life"},
	}

	topics, err := services.Topic.ListTopics(context.Background())
	if err != nil {
		t.Fatalf("ListTopics failed: %v", err)
	}
	if len(topics) != 1 || topics[0].Slug != "coding" {
		t.Errorf("Unexpected topics: %v", topics)
	}
}
