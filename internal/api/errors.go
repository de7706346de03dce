package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/nc-news-api/internal/models"
)

// Postgres error codes the pipeline recognizes
const (
	pqInvalidTextRepresentation = "22P02"
	pqNotNullViolation          = "23502"
	pqForeignKeyViolation       = "23503"
)

// respondError classifies any failure reaching a handler and writes the
// uniform {msg} error body. Stages are tried in order, first match wins:
// driver-level codes, then explicit domain errors, then a logged 500 with
// internals withheld from the client.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqInvalidTextRepresentation, pqNotNullViolation:
			c.JSON(http.StatusBadRequest, gin.H{"msg": "bad request"})
			return
		case pqForeignKeyViolation:
			c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
			return
		}
	}

	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"msg": apiErr.Msg})
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString(requestIDKey)).
		Msg("Unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal server error"})
}
