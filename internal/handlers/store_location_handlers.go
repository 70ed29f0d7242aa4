package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/tidwall/gjson"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

// GetAllStoreLocations is the handler for GET /api/store-locations
func (h *Handlers) GetAllStoreLocations(c *gin.Context) {
	locs, err := h.Store.GetAllStoreLocations(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch store locations")
		return
	}
	c.JSON(http.StatusOK, locs)
}

// GetStoreLocation is the handler for GET /api/store-locations/:id
func (h *Handlers) GetStoreLocation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	loc, err := h.Store.GetStoreLocation(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to fetch store location")
		return
	}
	if loc == nil {
		notFound(c, "Store location")
		return
	}
	c.JSON(http.StatusOK, loc)
}

// GetStoreLocationByCity is the handler for GET /api/store-locations/city/:city
func (h *Handlers) GetStoreLocationByCity(c *gin.Context) {
	loc, err := h.Store.GetStoreLocationByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		h.serverError(c, err, "Failed to fetch store location")
		return
	}
	if loc == nil {
		notFound(c, "Store location")
		return
	}
	c.JSON(http.StatusOK, loc)
}

// CreateStoreLocation is the handler for POST /api/admin/store-locations
func (h *Handlers) CreateStoreLocation(c *gin.Context) {
	var input models.CreateStoreLocationInput
	if !bindJSON(c, &input) {
		return
	}
	loc, err := h.Store.CreateStoreLocation(c.Request.Context(), input)
	if err != nil {
		h.serverError(c, err, "Failed to create store location")
		return
	}
	c.JSON(http.StatusCreated, loc)
}

// UpdateStoreLocation is the handler for PUT /api/admin/store-locations/:id
func (h *Handlers) UpdateStoreLocation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input models.UpdateStoreLocationInput
	if !bindJSON(c, &input) {
		return
	}
	h.applyStoreLocationUpdate(c, id, input)
}

// UpdateStoreLocationHours is the handler for PUT /api/admin/store-locations/:id/hours
// Only opening_hours, closed_days and hours change.
func (h *Handlers) UpdateStoreLocationHours(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	// 1. --- opening_hours must be a JSON object ---
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}
	if !gjson.ValidBytes(raw) || !gjson.GetBytes(raw, "opening_hours").IsObject() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "opening_hours must be an object"})
		return
	}

	// 2. --- Bind the three fields ---
	var input models.UpdateStoreLocationHoursInput
	if err := binding.JSON.BindBody(raw, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": validationDetails(err),
		})
		return
	}

	h.applyStoreLocationUpdate(c, id, input.AsUpdate())
}

func (h *Handlers) applyStoreLocationUpdate(c *gin.Context, id int64, input models.UpdateStoreLocationInput) {
	loc, err := h.Store.UpdateStoreLocation(c.Request.Context(), id, input)
	if err != nil {
		h.serverError(c, err, "Failed to update store location")
		return
	}
	if loc == nil {
		notFound(c, "Store location")
		return
	}
	c.JSON(http.StatusOK, loc)
}

// DeleteStoreLocation is the handler for DELETE /api/admin/store-locations/:id
func (h *Handlers) DeleteStoreLocation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	deleted, err := h.Store.DeleteStoreLocation(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to delete store location")
		return
	}
	if !deleted {
		notFound(c, "Store location")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store location deleted successfully"})
}
