package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

const (
	defaultFeaturedPosts = 3
	maxFeaturedPosts     = 20
	viewCountTimeout     = 5 * time.Second
)

// GetPublishedBlogPosts is the handler for GET /api/blog-posts
func (h *Handlers) GetPublishedBlogPosts(c *gin.Context) {
	posts, err := h.Store.GetAllBlogPosts(c.Request.Context(), false)
	if err != nil {
		h.serverError(c, err, "Failed to fetch blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetAllBlogPosts is the handler for GET /api/admin/blog-posts (drafts included)
func (h *Handlers) GetAllBlogPosts(c *gin.Context) {
	posts, err := h.Store.GetAllBlogPosts(c.Request.Context(), true)
	if err != nil {
		h.serverError(c, err, "Failed to fetch blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetFeaturedBlogPosts is the handler for GET /api/blog-posts/featured?limit=
func (h *Handlers) GetFeaturedBlogPosts(c *gin.Context) {
	limit := defaultFeaturedPosts
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = min(n, maxFeaturedPosts)
	}

	posts, err := h.Store.GetFeaturedBlogPosts(c.Request.Context(), limit)
	if err != nil {
		h.serverError(c, err, "Failed to fetch featured blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetBlogPost is the handler for GET /api/blog-posts/:id
func (h *Handlers) GetBlogPost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	post, err := h.Store.GetBlogPost(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to fetch blog post")
		return
	}
	h.servePublicPost(c, post)
}

// GetBlogPostBySlug is the handler for GET /api/blog-posts/slug/:slug
func (h *Handlers) GetBlogPostBySlug(c *gin.Context) {
	post, err := h.Store.GetBlogPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.serverError(c, err, "Failed to fetch blog post")
		return
	}
	h.servePublicPost(c, post)
}

// servePublicPost hides drafts and counts the view without waiting for it.
func (h *Handlers) servePublicPost(c *gin.Context, post *models.BlogPost) {
	if post == nil || !post.Published {
		notFound(c, "Blog post")
		return
	}
	h.recordView(post.ID)
	c.JSON(http.StatusOK, post)
}

// recordView increments the view count in the background. The request
// context is not used: the response may be gone before the write lands.
func (h *Handlers) recordView(id int64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), viewCountTimeout)
		defer cancel()
		if err := h.Store.IncrementBlogPostViewCount(ctx, id); err != nil {
			h.Log.WithError(err).WithField("post_id", id).Warn("Failed to increment blog post view count")
			return
		}
		h.Metrics.BlogPostViews.Inc()
	}()
}

// CreateBlogPost is the handler for POST /api/admin/blog-posts
func (h *Handlers) CreateBlogPost(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input models.CreateBlogPostInput
	if !bindJSON(c, &input) {
		return
	}

	// 2. --- Derive the slug from the title when none was sent ---
	var ok bool
	if input.Slug, ok = deriveSlug(c, input.Slug, input.Title, "title"); !ok {
		return
	}

	// 3. --- Save ---
	post, err := h.Store.CreateBlogPost(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err, "A blog post with this slug already exists", "Failed to create blog post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdateBlogPost is the handler for PUT /api/admin/blog-posts/:id
func (h *Handlers) UpdateBlogPost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input models.UpdateBlogPostInput
	if !bindJSON(c, &input) || !trimSlug(c, input.Slug) {
		return
	}

	post, err := h.Store.UpdateBlogPost(c.Request.Context(), id, input)
	if err != nil {
		h.writeError(c, err, "A blog post with this slug already exists", "Failed to update blog post")
		return
	}
	if post == nil {
		notFound(c, "Blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeleteBlogPost is the handler for DELETE /api/admin/blog-posts/:id
func (h *Handlers) DeleteBlogPost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	deleted, err := h.Store.DeleteBlogPost(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to delete blog post")
		return
	}
	if !deleted {
		notFound(c, "Blog post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}
