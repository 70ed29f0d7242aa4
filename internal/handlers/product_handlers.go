package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

//
// --- Product Categories ---
//

// GetAllProductCategories is the handler for GET /api/product-categories
func (h *Handlers) GetAllProductCategories(c *gin.Context) {
	cats, err := h.Store.GetAllProductCategories(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch product categories")
		return
	}
	c.JSON(http.StatusOK, cats)
}

// GetProductCategory is the handler for GET /api/product-categories/:id
func (h *Handlers) GetProductCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	cat, err := h.Store.GetProductCategory(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to fetch product category")
		return
	}
	if cat == nil {
		notFound(c, "Product category")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// GetProductCategoryBySlug is the handler for GET /api/product-categories/slug/:slug
func (h *Handlers) GetProductCategoryBySlug(c *gin.Context) {
	cat, err := h.Store.GetProductCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.serverError(c, err, "Failed to fetch product category")
		return
	}
	if cat == nil {
		notFound(c, "Product category")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// CreateProductCategory is the handler for POST /api/admin/product-categories
func (h *Handlers) CreateProductCategory(c *gin.Context) {
	var input models.CreateProductCategoryInput
	if !bindJSON(c, &input) {
		return
	}
	var ok bool
	if input.Slug, ok = deriveSlug(c, input.Slug, input.Name, "name"); !ok {
		return
	}

	cat, err := h.Store.CreateProductCategory(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err, "A product category with this slug already exists", "Failed to create product category")
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// UpdateProductCategory is the handler for PUT /api/admin/product-categories/:id
func (h *Handlers) UpdateProductCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input models.UpdateProductCategoryInput
	if !bindJSON(c, &input) || !trimSlug(c, input.Slug) {
		return
	}

	cat, err := h.Store.UpdateProductCategory(c.Request.Context(), id, input)
	if err != nil {
		h.writeError(c, err, "A product category with this slug already exists", "Failed to update product category")
		return
	}
	if cat == nil {
		notFound(c, "Product category")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DeleteProductCategory is the handler for DELETE /api/admin/product-categories/:id
func (h *Handlers) DeleteProductCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	deleted, err := h.Store.DeleteProductCategory(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to delete product category")
		return
	}
	if !deleted {
		notFound(c, "Product category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product category deleted successfully"})
}

//
// --- Products ---
//

// GetAllProducts is the handler for GET /api/products
func (h *Handlers) GetAllProducts(c *gin.Context) {
	products, err := h.Store.GetAllProducts(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetFeaturedProducts is the handler for GET /api/products/featured
func (h *Handlers) GetFeaturedProducts(c *gin.Context) {
	products, err := h.Store.GetFeaturedProducts(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch featured products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductsByCategory is the handler for GET /api/products/category/:category
func (h *Handlers) GetProductsByCategory(c *gin.Context) {
	products, err := h.Store.GetProductsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.serverError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct is the handler for GET /api/products/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := h.Store.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to fetch product")
		return
	}
	if p == nil {
		notFound(c, "Product")
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProduct is the handler for POST /api/products and POST /api/admin/products
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input models.CreateProductInput
	if !bindJSON(c, &input) {
		return
	}
	p, err := h.Store.CreateProduct(c.Request.Context(), input)
	if err != nil {
		h.serverError(c, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProduct is the handler for PUT /api/admin/products/:id
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input models.UpdateProductInput
	if !bindJSON(c, &input) {
		return
	}

	p, err := h.Store.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		h.serverError(c, err, "Failed to update product")
		return
	}
	if p == nil {
		notFound(c, "Product")
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProduct is the handler for DELETE /api/admin/products/:id
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	deleted, err := h.Store.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to delete product")
		return
	}
	if !deleted {
		notFound(c, "Product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
