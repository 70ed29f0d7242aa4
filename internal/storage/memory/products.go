package memory

import (
	"cmp"
	"context"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

func productCategoryID(c models.ProductCategory) int64 { return c.ID }
func productID(p models.Product) int64                 { return p.ID }

func byProductCategoryOrder(a, b models.ProductCategory) int {
	return cmp.Compare(a.DisplayOrder, b.DisplayOrder)
}

func cloneProductCategory(c models.ProductCategory) models.ProductCategory {
	c.Description = copyString(c.Description)
	return c
}

func cloneProduct(p models.Product) models.Product {
	p.Price = copyString(p.Price)
	p.FeaturedLabel = copyString(p.FeaturedLabel)
	if p.CategoryID != nil {
		id := *p.CategoryID
		p.CategoryID = &id
	}
	return p
}

// --- Product categories ---

func (s *Store) GetAllProductCategories(_ context.Context) ([]models.ProductCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := values(s.productCategories, productCategoryID, byProductCategoryOrder)
	for i := range out {
		out[i] = cloneProductCategory(out[i])
	}
	return out, nil
}

func (s *Store) GetProductCategory(_ context.Context, id int64) (*models.ProductCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.productCategories[id]
	if !ok {
		return nil, nil
	}
	c = cloneProductCategory(c)
	return &c, nil
}

func (s *Store) GetProductCategoryBySlug(_ context.Context, slug string) (*models.ProductCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.productCategoryBySlug(slug)
	if c == nil {
		return nil, nil
	}
	out := cloneProductCategory(*c)
	return &out, nil
}

func (s *Store) productCategoryBySlug(slug string) *models.ProductCategory {
	for _, c := range s.productCategories {
		if c.Slug == slug {
			return &c
		}
	}
	return nil
}

func (s *Store) CreateProductCategory(_ context.Context, in models.CreateProductCategoryInput) (*models.ProductCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.productCategoryBySlug(in.Slug) != nil {
		return nil, duplicate("product_categories.slug", in.Slug)
	}
	now := s.now()
	c := cloneProductCategory(models.ProductCategory{
		ID:           s.nextID("product_categories"),
		Name:         in.Name,
		Slug:         in.Slug,
		Description:  in.Description,
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	s.productCategories[c.ID] = c
	out := cloneProductCategory(c)
	return &out, nil
}

func (s *Store) UpdateProductCategory(_ context.Context, id int64, in models.UpdateProductCategoryInput) (*models.ProductCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.productCategories[id]
	if !ok {
		return nil, nil
	}
	if in.Slug != nil && *in.Slug != c.Slug && s.productCategoryBySlug(*in.Slug) != nil {
		return nil, duplicate("product_categories.slug", *in.Slug)
	}
	in.ApplyTo(&c)
	c.UpdatedAt = s.now()
	s.productCategories[id] = c
	out := cloneProductCategory(c)
	return &out, nil
}

func (s *Store) DeleteProductCategory(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.productCategories[id]; !ok {
		return false, nil
	}
	delete(s.productCategories, id)
	return true, nil
}

// --- Products ---

// filterProducts must be called with mu held.
func (s *Store) filterProducts(keep func(models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, p := range s.products {
		if keep == nil || keep(p) {
			out = append(out, cloneProduct(p))
		}
	}
	sortRows(out, productID, nil)
	return out
}

func (s *Store) GetAllProducts(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(nil), nil
}

func (s *Store) GetFeaturedProducts(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(func(p models.Product) bool { return p.Featured }), nil
}

func (s *Store) GetProductsByCategory(_ context.Context, category string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(func(p models.Product) bool { return p.Category == category }), nil
}

func (s *Store) GetProduct(_ context.Context, id int64) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	p = cloneProduct(p)
	return &p, nil
}

func (s *Store) GetProductByName(_ context.Context, name string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := s.filterProducts(func(p models.Product) bool { return p.Name == name })
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (s *Store) CreateProduct(_ context.Context, in models.CreateProductInput) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	p := cloneProduct(models.Product{
		ID:            s.nextID("products"),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Image:         in.Image,
		Category:      in.Category,
		CategoryID:    in.CategoryID,
		Featured:      in.Featured,
		FeaturedLabel: in.FeaturedLabel,
		Stock:         in.Stock,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	s.products[p.ID] = p
	out := cloneProduct(p)
	return &out, nil
}

func (s *Store) UpdateProduct(_ context.Context, id int64, in models.UpdateProductInput) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	in.ApplyTo(&p)
	p.UpdatedAt = s.now()
	s.products[id] = p
	out := cloneProduct(p)
	return &out, nil
}

func (s *Store) DeleteProduct(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}
