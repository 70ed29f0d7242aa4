package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

// Subscribe is the handler for POST /api/newsletter/subscribe
// A new address is 201. A known address is reactivated (or left active) and answered with 200.
func (h *Handlers) Subscribe(c *gin.Context) {
	var input models.SubscribeInput
	if !bindJSON(c, &input) {
		return
	}
	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := h.Store.GetNewsletterSubscriptionByEmail(ctx, email)
	if err != nil {
		h.serverError(c, err, "Failed to subscribe")
		return
	}

	if existing != nil {
		if existing.IsActive {
			c.JSON(http.StatusOK, gin.H{"message": "Already subscribed", "subscription": existing})
			return
		}
		active := true
		sub, err := h.Store.UpdateNewsletterSubscription(ctx, existing.ID, models.UpdateNewsletterSubscriptionInput{
			IsActive: &active,
			Source:   input.Source,
		})
		if err != nil {
			h.serverError(c, err, "Failed to subscribe")
			return
		}
		h.Log.WithField("subscription_id", existing.ID).Info("Newsletter subscription reactivated")
		c.JSON(http.StatusOK, gin.H{"message": "Subscription reactivated", "subscription": sub})
		return
	}

	ip := c.ClientIP()
	sub, err := h.Store.CreateNewsletterSubscription(ctx, models.CreateNewsletterSubscriptionInput{
		Email:     email,
		Source:    input.Source,
		IPAddress: &ip,
	})
	if err != nil {
		// A concurrent sign-up for the same address lost the race on the unique index.
		h.writeError(c, err, "Already subscribed", "Failed to subscribe")
		return
	}
	h.Log.WithFields(logrus.Fields{"subscription_id": sub.ID}).Info("Newsletter subscription created")
	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully", "subscription": sub})
}

// GetAllNewsletterSubscriptions is the handler for GET /api/admin/newsletter-subscriptions
func (h *Handlers) GetAllNewsletterSubscriptions(c *gin.Context) {
	subs, err := h.Store.GetAllNewsletterSubscriptions(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch newsletter subscriptions")
		return
	}
	c.JSON(http.StatusOK, subs)
}

// DeleteNewsletterSubscription is the handler for DELETE /api/admin/newsletter-subscriptions/:id
func (h *Handlers) DeleteNewsletterSubscription(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	deleted, err := h.Store.DeleteNewsletterSubscription(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to delete newsletter subscription")
		return
	}
	if !deleted {
		notFound(c, "Newsletter subscription")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Newsletter subscription deleted successfully"})
}
