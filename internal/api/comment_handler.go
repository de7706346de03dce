package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/service"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListByArticle handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	ctx := c.Request.Context()

	comments, err := h.services.Comment.ListByArticle(ctx, c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create handles POST /api/articles/:article_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var in models.NewComment
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, h.log, models.ErrBadRequest())
		return
	}

	comment, err := h.services.Comment.CreateComment(ctx, c.Param("article_id"), &in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// Delete handles DELETE /api/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.services.Comment.DeleteComment(ctx, c.Param("comment_id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchVotes handles PATCH /api/comments/:comment_id
func (h *CommentHandler) PatchVotes(c *gin.Context) {
	ctx := c.Request.Context()

	var patch models.VotesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, h.log, models.ErrBadRequest())
		return
	}

	comment, err := h.services.Comment.UpdateCommentVotes(ctx, c.Param("comment_id"), &patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}
