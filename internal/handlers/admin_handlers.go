package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/01moynul/vapeshop-golang/internal/middleware"
	"github.com/01moynul/vapeshop-golang/internal/models"
)

// CreateUser is the handler for POST /api/admin/users
func (h *Handlers) CreateUser(c *gin.Context) {
	var input models.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.Store.CreateUser(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err, "Username already exists", "Failed to create user")
		return
	}

	fields := logrus.Fields{"user_id": user.ID, "is_admin": user.IsAdmin}
	if admin := middleware.CurrentUser(c); admin != nil {
		fields["created_by"] = admin.ID
	}
	h.Log.WithFields(fields).Info("User created")
	c.JSON(http.StatusCreated, user)
}

// GetDashboardStats is the handler for GET /api/admin/dashboard-stats
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	stats, err := h.Store.GetDashboardStats(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SeedStoreLocations is the handler for POST /api/admin/seed-store-locations
func (h *Handlers) SeedStoreLocations(c *gin.Context) {
	res, err := h.Seeder.SeedStoreLocations(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to seed store locations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store locations seeded successfully", "result": res})
}

// SeedProducts is the handler for POST /api/admin/seed-products
func (h *Handlers) SeedProducts(c *gin.Context) {
	res, err := h.Seeder.SeedProducts(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to seed products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Products seeded successfully", "result": res})
}
