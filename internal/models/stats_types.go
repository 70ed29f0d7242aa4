package models

// DashboardStats are the row counts shown on the admin dashboard.
type DashboardStats struct {
	Users              int64 `json:"users" db:"users"`
	BrandCategories    int64 `json:"brandCategories" db:"brand_categories"`
	Brands             int64 `json:"brands" db:"brands"`
	BlogPosts          int64 `json:"blogPosts" db:"blog_posts"`
	PublishedBlogPosts int64 `json:"publishedBlogPosts" db:"published_blog_posts"`
	BlogViews          int64 `json:"blogViews" db:"blog_views"`
	StoreLocations     int64 `json:"storeLocations" db:"store_locations"`
	ProductCategories  int64 `json:"productCategories" db:"product_categories"`
	Products           int64 `json:"products" db:"products"`
	Subscribers        int64 `json:"subscribers" db:"subscribers"`
	ActiveSubscribers  int64 `json:"activeSubscribers" db:"active_subscribers"`
}
