package postgres

import (
	"context"
	"fmt"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

const dashboardStatsQuery = `SELECT
	(SELECT COUNT(*) FROM users) AS users,
	(SELECT COUNT(*) FROM brand_categories) AS brand_categories,
	(SELECT COUNT(*) FROM brands) AS brands,
	(SELECT COUNT(*) FROM blog_posts) AS blog_posts,
	(SELECT COUNT(*) FROM blog_posts WHERE published = TRUE) AS published_blog_posts,
	(SELECT COALESCE(SUM(view_count), 0)::BIGINT FROM blog_posts) AS blog_views,
	(SELECT COUNT(*) FROM store_locations) AS store_locations,
	(SELECT COUNT(*) FROM product_categories) AS product_categories,
	(SELECT COUNT(*) FROM products) AS products,
	(SELECT COUNT(*) FROM newsletter_subscriptions) AS subscribers,
	(SELECT COUNT(*) FROM newsletter_subscriptions WHERE is_active = TRUE) AS active_subscribers`

func (s *Store) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var st models.DashboardStats
	if err := s.db.GetContext(ctx, &st, dashboardStatsQuery); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &st, nil
}
