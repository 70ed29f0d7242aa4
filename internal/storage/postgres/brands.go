package postgres

import (
	"context"
	"fmt"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

const (
	brandCategoryColumns = "id, category, bg_class, display_order, interval_ms"
	brandColumns         = "id, category_id, name, image, description, display_order"
)

// --- Brand categories ---

func (s *Store) GetAllBrandCategories(ctx context.Context) ([]models.BrandCategory, error) {
	out := []models.BrandCategory{}
	query := "SELECT " + brandCategoryColumns + " FROM brand_categories ORDER BY display_order, id"
	if err := s.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list brand categories: %w", err)
	}
	return out, nil
}

func (s *Store) GetBrandCategory(ctx context.Context, id int64) (*models.BrandCategory, error) {
	var c models.BrandCategory
	found, err := s.get(ctx, &c, "SELECT "+brandCategoryColumns+" FROM brand_categories WHERE id = $1", id)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateBrandCategory(ctx context.Context, in models.CreateBrandCategoryInput) (*models.BrandCategory, error) {
	in = in.Defaults()
	var c models.BrandCategory
	query := `INSERT INTO brand_categories (category, bg_class, display_order, interval_ms)
		VALUES ($1, $2, $3, $4) RETURNING ` + brandCategoryColumns
	if _, err := s.get(ctx, &c, query, in.Category, in.BgClass, in.DisplayOrder, in.IntervalMs); err != nil {
		return nil, fmt.Errorf("create brand category: %w", err)
	}
	return &c, nil
}

func (s *Store) UpdateBrandCategory(ctx context.Context, id int64, in models.UpdateBrandCategoryInput) (*models.BrandCategory, error) {
	var c models.BrandCategory
	found, err := s.update(ctx, &c, "brand_categories", brandCategoryColumns, id, in.Assignments(), false)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

// DeleteBrandCategory leaves the category's brands in place.
func (s *Store) DeleteBrandCategory(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "brand_categories", id)
}

func (s *Store) CountBrandsByCategory(ctx context.Context) (map[int64]int, error) {
	var rows []struct {
		CategoryID int64 `db:"category_id"`
		Count      int   `db:"n"`
	}
	if err := s.db.SelectContext(ctx, &rows, "SELECT category_id, COUNT(*) AS n FROM brands GROUP BY category_id"); err != nil {
		return nil, fmt.Errorf("count brands: %w", err)
	}
	counts := make(map[int64]int, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Count
	}
	return counts, nil
}

// --- Brands ---

func (s *Store) GetAllBrands(ctx context.Context) ([]models.Brand, error) {
	out := []models.Brand{}
	if err := s.db.SelectContext(ctx, &out, "SELECT "+brandColumns+" FROM brands ORDER BY display_order, id"); err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return out, nil
}

func (s *Store) GetBrandsByCategory(ctx context.Context, categoryID int64) ([]models.Brand, error) {
	out := []models.Brand{}
	query := "SELECT " + brandColumns + " FROM brands WHERE category_id = $1 ORDER BY display_order, id"
	if err := s.db.SelectContext(ctx, &out, query, categoryID); err != nil {
		return nil, fmt.Errorf("list brands by category: %w", err)
	}
	return out, nil
}

func (s *Store) GetBrand(ctx context.Context, id int64) (*models.Brand, error) {
	var b models.Brand
	found, err := s.get(ctx, &b, "SELECT "+brandColumns+" FROM brands WHERE id = $1", id)
	if err != nil || !found {
		return nil, err
	}
	return &b, nil
}

func (s *Store) CreateBrand(ctx context.Context, in models.CreateBrandInput) (*models.Brand, error) {
	var b models.Brand
	query := `INSERT INTO brands (category_id, name, image, description, display_order)
		VALUES ($1, $2, $3, $4, $5) RETURNING ` + brandColumns
	if _, err := s.get(ctx, &b, query, in.CategoryID, in.Name, in.Image, in.Description, in.DisplayOrder); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return &b, nil
}

func (s *Store) UpdateBrand(ctx context.Context, id int64, in models.UpdateBrandInput) (*models.Brand, error) {
	var b models.Brand
	found, err := s.update(ctx, &b, "brands", brandColumns, id, in.Assignments(), false)
	if err != nil || !found {
		return nil, err
	}
	return &b, nil
}

func (s *Store) DeleteBrand(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "brands", id)
}
