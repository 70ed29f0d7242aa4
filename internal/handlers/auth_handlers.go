package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/vapeshop-golang/internal/auth"
)

// LoginInput is the body of POST /api/auth/login
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input LoginInput
	if !bindJSON(c, &input) {
		return
	}
	ctx := c.Request.Context()

	// 2. --- Check credentials ---
	user, err := h.Store.ValidateUser(ctx, input.Username, input.Password)
	if err != nil {
		h.serverError(c, err, "Failed to log in")
		return
	}
	if user == nil {
		h.Log.WithField("client_ip", c.ClientIP()).Warn("Failed login attempt")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	// 3. --- Start the session ---
	token, _, err := h.Sessions.Start(ctx, user.ID)
	if err != nil {
		h.serverError(c, err, "Failed to log in")
		return
	}

	// 4. --- Set the cookie ---
	h.setSessionCookie(c, token, int(auth.SessionLifetime.Seconds()))
	h.Log.WithField("user_id", user.ID).Info("User logged in")
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout is the handler for POST /api/auth/logout
func (h *Handlers) Logout(c *gin.Context) {
	if token, err := c.Cookie(auth.CookieName); err == nil && token != "" {
		if err := h.Sessions.End(c.Request.Context(), token); err != nil {
			h.serverError(c, err, "Failed to log out")
			return
		}
	}
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// AuthStatus is the handler for GET /api/auth/status
func (h *Handlers) AuthStatus(c *gin.Context) {
	ctx := c.Request.Context()
	token, _ := c.Cookie(auth.CookieName)

	sess, err := h.Sessions.Resolve(ctx, token)
	if err != nil {
		h.serverError(c, err, "Failed to check authentication")
		return
	}
	if sess == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	user, err := h.Store.GetUser(ctx, sess.UserID)
	if err != nil {
		h.serverError(c, err, "Failed to check authentication")
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": user})
}

func (h *Handlers) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, value, maxAge, "/", "", h.CookieSecure, true)
}
