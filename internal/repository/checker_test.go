package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nc-news-api/internal/models"
)

func TestChecker_RejectsUntrustedIdentifiers(t *testing.T) {
	// An identifier pair outside the fixed set must fail before any SQL is
	// built; a checker with no connection panics if it does not.
	chk := &checker{db: nil}

	pairs := [][2]string{
		{"articles", "title"},
		{"pg_catalog", "relname"},
		{"articles; DROP TABLE comments;--", "article_id"},
		{"articles", "article_id; --"},
	}

	for _, pair := range pairs {
		err := chk.Exists(context.Background(), pair[0], pair[1], "1")
		if err == nil {
			t.Errorf("Expected error for %s.%s", pair[0], pair[1])
			continue
		}
		var apiErr *models.APIError
		if errors.As(err, &apiErr) {
			t.Errorf("Untrusted identifiers are a programming error, not a client 404, got %v", apiErr)
		}
		if !strings.Contains(err.Error(), "not supported") {
			t.Errorf("Unexpected error for %s.%s: %v", pair[0], pair[1], err)
		}
	}
}

func TestExistenceQueries_ParameterizeValueOnly(t *testing.T) {
	for pair, query := range existenceQueries {
		if !strings.Contains(query, "$1") {
			t.Errorf("Query for %s does not parameterize the value: %s", pair, query)
		}
		if strings.Count(query, "$") != 1 {
			t.Errorf("Query for %s should bind exactly one value: %s", pair, query)
		}
	}
}
