package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/01moynul/vapeshop-golang/internal/auth"
	"github.com/01moynul/vapeshop-golang/internal/models"
	"github.com/01moynul/vapeshop-golang/internal/storage"
)

// Context keys set by the gates.
const (
	UserIDKey = "userID"
	UserKey   = "user"
)

// RequireAuth resolves the session cookie to a user id. Requests without a
// live session are rejected with 401.
func RequireAuth(sessions *auth.Sessions, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. --- Read the cookie ---
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		// 2. --- Resolve the session ---
		sess, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			log.WithError(err).Error("Failed to load session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		// 3. --- Success ---
		c.Set(UserIDKey, sess.UserID)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth. It re-reads the user row on every
// request, so revoking the admin flag takes effect immediately.
func RequireAdmin(users storage.UserStore, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get userID from RequireAuth
		userID := c.GetInt64(UserIDKey)
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		// 2. Load the user
		user, err := users.GetUser(c.Request.Context(), userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Failed to load user for admin check")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check permissions"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		// 3. Check permission
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAdmin, if any.
func CurrentUser(c *gin.Context) *models.User {
	u, _ := c.Get(UserKey)
	user, _ := u.(*models.User)
	return user
}
