package memory

import (
	"context"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

func (s *Store) GetDashboardStats(_ context.Context) (*models.DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := &models.DashboardStats{
		Users:             int64(len(s.users)),
		BrandCategories:   int64(len(s.brandCategories)),
		Brands:            int64(len(s.brands)),
		BlogPosts:         int64(len(s.blogPosts)),
		StoreLocations:    int64(len(s.storeLocations)),
		ProductCategories: int64(len(s.productCategories)),
		Products:          int64(len(s.products)),
		Subscribers:       int64(len(s.subscriptions)),
	}
	for _, p := range s.blogPosts {
		st.BlogViews += p.ViewCount
		if p.Published {
			st.PublishedBlogPosts++
		}
	}
	for _, n := range s.subscriptions {
		if n.IsActive {
			st.ActiveSubscribers++
		}
	}
	return st, nil
}
