package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"

	"github.com/01moynul/vapeshop-golang/internal/ai"
	"github.com/01moynul/vapeshop-golang/internal/auth"
	"github.com/01moynul/vapeshop-golang/internal/metrics"
	"github.com/01moynul/vapeshop-golang/internal/models"
	"github.com/01moynul/vapeshop-golang/internal/seed"
	"github.com/01moynul/vapeshop-golang/internal/storage"
)

// MetaDrafter drafts SEO fields for a blog post.
type MetaDrafter interface {
	DraftMeta(ctx context.Context, post models.BlogPost) (*ai.MetaDraft, error)
}

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store      storage.Storage
	Sessions   *auth.Sessions
	Seeder     *seed.Seeder
	Copywriter MetaDrafter // nil when no Gemini key is configured
	Metrics    *metrics.Metrics
	Log        logrus.FieldLogger

	UploadDir    string
	PublicURL    string
	CookieSecure bool
}

// Health is the handler for GET /api/health
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --- Shared helpers ---

// bindJSON binds and validates the body. On failure it writes the 400
// response and returns false.
func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": validationDetails(err),
		})
		return false
	}
	return true
}

// paramID parses the :id path parameter. On failure it writes the 400
// response and returns false.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}

// serverError logs the cause and answers with a generic 500.
func (h *Handlers) serverError(c *gin.Context, err error, msg string) {
	h.Log.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// writeError maps a storage write error: duplicates are 409, the rest 500.
func (h *Handlers) writeError(c *gin.Context, err error, conflictMsg, failMsg string) {
	if errors.Is(err, models.ErrDuplicate) {
		c.JSON(http.StatusConflict, gin.H{"error": conflictMsg})
		return
	}
	h.serverError(c, err, failMsg)
}

// fieldError answers 400 with a single validation detail.
func fieldError(c *gin.Context, field, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request data",
		"details": []FieldError{{Field: field, Message: msg}},
	})
}

// deriveSlug returns the trimmed explicit slug, or one made from source
// ("name" or "title"). When neither yields a slug it writes the 400 and
// returns false.
func deriveSlug(c *gin.Context, explicit, source, sourceField string) (string, bool) {
	s := strings.TrimSpace(explicit)
	if s == "" {
		s = slug.Make(source)
	}
	if s == "" {
		fieldError(c, "slug", "could not be derived from the "+sourceField)
		return "", false
	}
	return s, true
}

// trimSlug trims a slug sent on update. A slug that is only whitespace is
// rejected with a 400.
func trimSlug(c *gin.Context, s *string) bool {
	if s == nil {
		return true
	}
	*s = strings.TrimSpace(*s)
	if *s == "" {
		fieldError(c, "slug", "must not be blank")
		return false
	}
	return true
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
}
