package postgres

import (
	"context"
	"fmt"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

const (
	productCategoryColumns = "id, name, slug, description, display_order, created_at, updated_at"
	productColumns         = `id, name, description, price, image, category, category_id, featured,
	featured_label, stock, created_at, updated_at`
)

// --- Product categories ---

func (s *Store) GetAllProductCategories(ctx context.Context) ([]models.ProductCategory, error) {
	out := []models.ProductCategory{}
	query := "SELECT " + productCategoryColumns + " FROM product_categories ORDER BY display_order, id"
	if err := s.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	return out, nil
}

func (s *Store) GetProductCategory(ctx context.Context, id int64) (*models.ProductCategory, error) {
	var c models.ProductCategory
	found, err := s.get(ctx, &c, "SELECT "+productCategoryColumns+" FROM product_categories WHERE id = $1", id)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

func (s *Store) GetProductCategoryBySlug(ctx context.Context, slug string) (*models.ProductCategory, error) {
	var c models.ProductCategory
	found, err := s.get(ctx, &c, "SELECT "+productCategoryColumns+" FROM product_categories WHERE slug = $1", slug)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateProductCategory(ctx context.Context, in models.CreateProductCategoryInput) (*models.ProductCategory, error) {
	var c models.ProductCategory
	query := `INSERT INTO product_categories (name, slug, description, display_order)
		VALUES ($1, $2, $3, $4) RETURNING ` + productCategoryColumns
	if _, err := s.get(ctx, &c, query, in.Name, in.Slug, in.Description, in.DisplayOrder); err != nil {
		return nil, fmt.Errorf("create product category: %w", err)
	}
	return &c, nil
}

func (s *Store) UpdateProductCategory(ctx context.Context, id int64, in models.UpdateProductCategoryInput) (*models.ProductCategory, error) {
	var c models.ProductCategory
	found, err := s.update(ctx, &c, "product_categories", productCategoryColumns, id, in.Assignments(), true)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

func (s *Store) DeleteProductCategory(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "product_categories", id)
}

// --- Products ---

func (s *Store) listProducts(ctx context.Context, where string, args ...any) ([]models.Product, error) {
	out := []models.Product{}
	query := "SELECT " + productColumns + " FROM products"
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY id"
	if err := s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (s *Store) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.listProducts(ctx, "")
}

func (s *Store) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return s.listProducts(ctx, "featured = TRUE")
}

func (s *Store) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.listProducts(ctx, "category = $1", category)
}

func (s *Store) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	found, err := s.get(ctx, &p, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *Store) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	var p models.Product
	found, err := s.get(ctx, &p, "SELECT "+productColumns+" FROM products WHERE name = $1 ORDER BY id LIMIT 1", name)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, in models.CreateProductInput) (*models.Product, error) {
	var p models.Product
	query := `INSERT INTO products
		(name, description, price, image, category, category_id, featured, featured_label, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING ` + productColumns
	_, err := s.get(ctx, &p, query,
		in.Name, in.Description, in.Price, in.Image, in.Category, in.CategoryID,
		in.Featured, in.FeaturedLabel, in.Stock)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &p, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id int64, in models.UpdateProductInput) (*models.Product, error) {
	var p models.Product
	found, err := s.update(ctx, &p, "products", productColumns, id, in.Assignments(), true)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "products", id)
}
