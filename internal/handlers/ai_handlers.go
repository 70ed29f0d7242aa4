package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DraftBlogPostMeta is the handler for POST /api/admin/blog-posts/:id/draft-meta
// The draft is returned for review and never saved.
func (h *Handlers) DraftBlogPostMeta(c *gin.Context) {
	if h.Copywriter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI copywriter is not configured"})
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	post, err := h.Store.GetBlogPost(ctx, id)
	if err != nil {
		h.serverError(c, err, "Failed to fetch blog post")
		return
	}
	if post == nil {
		notFound(c, "Blog post")
		return
	}

	draft, err := h.Copywriter.DraftMeta(ctx, *post)
	if err != nil {
		h.Log.WithError(err).WithField("post_id", id).Error("Failed to draft blog post meta")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to draft meta fields"})
		return
	}
	c.JSON(http.StatusOK, draft)
}
