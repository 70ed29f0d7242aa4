package memory

import (
	"cmp"
	"context"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

func brandCategoryID(c models.BrandCategory) int64 { return c.ID }
func brandID(b models.Brand) int64                 { return b.ID }

func byBrandCategoryOrder(a, b models.BrandCategory) int { return cmp.Compare(a.DisplayOrder, b.DisplayOrder) }
func byBrandOrder(a, b models.Brand) int                 { return cmp.Compare(a.DisplayOrder, b.DisplayOrder) }

// --- Brand categories ---

func (s *Store) GetAllBrandCategories(_ context.Context) ([]models.BrandCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return values(s.brandCategories, brandCategoryID, byBrandCategoryOrder), nil
}

func (s *Store) GetBrandCategory(_ context.Context, id int64) (*models.BrandCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.brandCategories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) CreateBrandCategory(_ context.Context, in models.CreateBrandCategoryInput) (*models.BrandCategory, error) {
	in = in.Defaults()
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.BrandCategory{
		ID:           s.nextID("brand_categories"),
		Category:     in.Category,
		BgClass:      in.BgClass,
		DisplayOrder: in.DisplayOrder,
		IntervalMs:   in.IntervalMs,
	}
	s.brandCategories[c.ID] = c
	return &c, nil
}

func (s *Store) UpdateBrandCategory(_ context.Context, id int64, in models.UpdateBrandCategoryInput) (*models.BrandCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.brandCategories[id]
	if !ok {
		return nil, nil
	}
	in.ApplyTo(&c)
	s.brandCategories[id] = c
	return &c, nil
}

// DeleteBrandCategory leaves the category's brands in place.
func (s *Store) DeleteBrandCategory(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.brandCategories[id]; !ok {
		return false, nil
	}
	delete(s.brandCategories, id)
	return true, nil
}

func (s *Store) CountBrandsByCategory(_ context.Context) (map[int64]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := map[int64]int{}
	for _, b := range s.brands {
		counts[b.CategoryID]++
	}
	return counts, nil
}

// --- Brands ---

func (s *Store) GetAllBrands(_ context.Context) ([]models.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return values(s.brands, brandID, byBrandOrder), nil
}

func (s *Store) GetBrandsByCategory(_ context.Context, categoryID int64) ([]models.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Brand{}
	for _, b := range s.brands {
		if b.CategoryID == categoryID {
			out = append(out, b)
		}
	}
	sortRows(out, brandID, byBrandOrder)
	return out, nil
}

func (s *Store) GetBrand(_ context.Context, id int64) (*models.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.brands[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *Store) CreateBrand(_ context.Context, in models.CreateBrandInput) (*models.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := models.Brand{
		ID:           s.nextID("brands"),
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Image:        in.Image,
		Description:  in.Description,
		DisplayOrder: in.DisplayOrder,
	}
	s.brands[b.ID] = b
	return &b, nil
}

func (s *Store) UpdateBrand(_ context.Context, id int64, in models.UpdateBrandInput) (*models.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.brands[id]
	if !ok {
		return nil, nil
	}
	in.ApplyTo(&b)
	s.brands[id] = b
	return &b, nil
}

func (s *Store) DeleteBrand(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.brands[id]; !ok {
		return false, nil
	}
	delete(s.brands, id)
	return true, nil
}
