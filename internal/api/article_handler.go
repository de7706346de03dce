package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/service"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /api/articles?topic=...&sort_by=...&order=...
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	ctx := c.Request.Context()

	topic := c.Query("topic")
	sortBy := c.Query("sort_by")
	order := c.Query("order")

	articles, err := h.services.Article.ListArticles(ctx, topic, sortBy, order)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	ctx := c.Request.Context()

	article, err := h.services.Article.GetArticle(ctx, c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// PatchVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) PatchVotes(c *gin.Context) {
	ctx := c.Request.Context()

	var patch models.VotesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, h.log, models.ErrBadRequest())
		return
	}

	article, err := h.services.Article.UpdateArticleVotes(ctx, c.Param("article_id"), &patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}
