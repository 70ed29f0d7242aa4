package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

// DefaultImageSize is the display hint attached to every brand response.
const DefaultImageSize = "medium"

// BrandView is a brand as the frontend receives it. ImageSize is a display
// hint only and is never stored.
type BrandView struct {
	models.Brand
	ImageSize string `json:"imageSize"`
}

func brandView(b models.Brand) BrandView {
	return BrandView{Brand: b, ImageSize: DefaultImageSize}
}

func brandViews(brands []models.Brand) []BrandView {
	out := make([]BrandView, 0, len(brands))
	for _, b := range brands {
		out = append(out, brandView(b))
	}
	return out
}

// BrandCategoryView carries the number of brands still pointing at the
// category; the admin UI disables deletion while it is non-zero.
type BrandCategoryView struct {
	models.BrandCategory
	BrandCount int `json:"brandCount"`
}

// FeaturedBrandCategory is one carousel of the brands page.
type FeaturedBrandCategory struct {
	models.BrandCategory
	Brands []BrandView `json:"brands"`
}

//
// --- Brand Categories ---
//

// GetAllBrandCategories is the handler for GET /api/brand-categories
func (h *Handlers) GetAllBrandCategories(c *gin.Context) {
	ctx := c.Request.Context()
	cats, err := h.Store.GetAllBrandCategories(ctx)
	if err != nil {
		h.serverError(c, err, "Failed to fetch brand categories")
		return
	}
	counts, err := h.Store.CountBrandsByCategory(ctx)
	if err != nil {
		h.serverError(c, err, "Failed to fetch brand categories")
		return
	}

	out := make([]BrandCategoryView, 0, len(cats))
	for _, cat := range cats {
		out = append(out, BrandCategoryView{BrandCategory: cat, BrandCount: counts[cat.ID]})
	}
	c.JSON(http.StatusOK, out)
}

// GetBrandCategory is the handler for GET /api/brand-categories/:id
func (h *Handlers) GetBrandCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	cat, err := h.Store.GetBrandCategory(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to fetch brand category")
		return
	}
	if cat == nil {
		notFound(c, "Brand category")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// CreateBrandCategory is the handler for POST /api/admin/brand-categories
func (h *Handlers) CreateBrandCategory(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input models.CreateBrandCategoryInput
	if !bindJSON(c, &input) {
		return
	}

	// 2. --- Save ---
	cat, err := h.Store.CreateBrandCategory(c.Request.Context(), input)
	if err != nil {
		h.serverError(c, err, "Failed to create brand category")
		return
	}

	c.JSON(http.StatusCreated, cat)
}

// UpdateBrandCategory is the handler for PUT /api/admin/brand-categories/:id
func (h *Handlers) UpdateBrandCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input models.UpdateBrandCategoryInput
	if !bindJSON(c, &input) {
		return
	}

	cat, err := h.Store.UpdateBrandCategory(c.Request.Context(), id, input)
	if err != nil {
		h.serverError(c, err, "Failed to update brand category")
		return
	}
	if cat == nil {
		notFound(c, "Brand category")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DeleteBrandCategory is the handler for DELETE /api/admin/brand-categories/:id
// Brands in the category are left in place.
func (h *Handlers) DeleteBrandCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	deleted, err := h.Store.DeleteBrandCategory(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to delete brand category")
		return
	}
	if !deleted {
		notFound(c, "Brand category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand category deleted successfully"})
}

//
// --- Brands ---
//

// GetAllBrands is the handler for GET /api/brands?categoryId=
func (h *Handlers) GetAllBrands(c *gin.Context) {
	var (
		brands []models.Brand
		err    error
	)
	if raw := c.Query("categoryId"); raw != "" {
		categoryID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoryId"})
			return
		}
		brands, err = h.Store.GetBrandsByCategory(c.Request.Context(), categoryID)
	} else {
		brands, err = h.Store.GetAllBrands(c.Request.Context())
	}
	if err != nil {
		h.serverError(c, err, "Failed to fetch brands")
		return
	}
	c.JSON(http.StatusOK, brandViews(brands))
}

// GetBrand is the handler for GET /api/brands/:id
func (h *Handlers) GetBrand(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	b, err := h.Store.GetBrand(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to fetch brand")
		return
	}
	if b == nil {
		notFound(c, "Brand")
		return
	}
	c.JSON(http.StatusOK, brandView(*b))
}

// CreateBrand is the handler for POST /api/admin/brands
// An imageSize in the body is accepted and dropped.
func (h *Handlers) CreateBrand(c *gin.Context) {
	var input models.CreateBrandInput
	if !bindJSON(c, &input) {
		return
	}

	b, err := h.Store.CreateBrand(c.Request.Context(), input)
	if err != nil {
		h.serverError(c, err, "Failed to create brand")
		return
	}
	c.JSON(http.StatusCreated, brandView(*b))
}

// UpdateBrand is the handler for PUT /api/admin/brands/:id
func (h *Handlers) UpdateBrand(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input models.UpdateBrandInput
	if !bindJSON(c, &input) {
		return
	}

	b, err := h.Store.UpdateBrand(c.Request.Context(), id, input)
	if err != nil {
		h.serverError(c, err, "Failed to update brand")
		return
	}
	if b == nil {
		notFound(c, "Brand")
		return
	}
	c.JSON(http.StatusOK, brandView(*b))
}

// DeleteBrand is the handler for DELETE /api/admin/brands/:id
func (h *Handlers) DeleteBrand(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	deleted, err := h.Store.DeleteBrand(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to delete brand")
		return
	}
	if !deleted {
		notFound(c, "Brand")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
}

// GetFeaturedBrands is the handler for GET /api/featured-brands
// Categories come in display order, each with its brands in display order.
func (h *Handlers) GetFeaturedBrands(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. --- Categories ---
	cats, err := h.Store.GetAllBrandCategories(ctx)
	if err != nil {
		h.serverError(c, err, "Failed to fetch featured brands")
		return
	}

	// 2. --- Brands per category ---
	out := make([]FeaturedBrandCategory, 0, len(cats))
	for _, cat := range cats {
		brands, err := h.Store.GetBrandsByCategory(ctx, cat.ID)
		if err != nil {
			h.serverError(c, err, "Failed to fetch featured brands")
			return
		}
		out = append(out, FeaturedBrandCategory{BrandCategory: cat, Brands: brandViews(brands)})
	}

	c.JSON(http.StatusOK, out)
}
