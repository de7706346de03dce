package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/nc-news-api/internal/models"
)

func respond(t *testing.T, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/articles/abc", nil)

	respondError(c, zerolog.Nop(), err)

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body["msg"]
}

func TestRespondError_InvalidTextRepresentation(t *testing.T) {
	status, msg := respond(t, &pq.Error{Code: "22P02"})
	if status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", status)
	}
	if msg != "bad request" {
		t.Errorf("Expected msg 'bad request', got %q", msg)
	}
}

func TestRespondError_NotNullViolation(t *testing.T) {
	status, msg := respond(t, &pq.Error{Code: "23502"})
	if status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", status)
	}
	if msg != "bad request" {
		t.Errorf("Expected msg 'bad request', got %q", msg)
	}
}

func TestRespondError_ForeignKeyViolation(t *testing.T) {
	status, msg := respond(t, &pq.Error{Code: "23503"})
	if status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", status)
	}
	if msg != "not found" {
		t.Errorf("Expected msg 'not found', got %q", msg)
	}
}

func TestRespondError_EchoesAPIError(t *testing.T) {
	status, msg := respond(t, &models.APIError{Status: http.StatusNotFound, Msg: "not found"})
	if status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", status)
	}
	if msg != "not found" {
		t.Errorf("Expected msg echoed verbatim, got %q", msg)
	}
}

func TestRespondError_WrappedAPIError(t *testing.T) {
	wrapped := fmt.Errorf("listing articles: %w", models.ErrBadRequest())
	status, msg := respond(t, wrapped)
	if status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", status)
	}
	if msg != "bad request" {
		t.Errorf("Expected msg 'bad request', got %q", msg)
	}
}

func TestRespondError_UnclassifiedIs500(t *testing.T) {
	status, msg := respond(t, errors.New("connection refused"))
	if status != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", status)
	}
	// Internals are withheld from the client
	if msg != "internal server error" {
		t.Errorf("Expected generic message, got %q", msg)
	}
}

func TestRespondError_UnrecognizedPqCodeIs500(t *testing.T) {
	status, _ := respond(t, &pq.Error{Code: "53300"})
	if status != http.StatusInternalServerError {
		t.Errorf("Expected 500 for unrecognized driver code, got %d", status)
	}
}
