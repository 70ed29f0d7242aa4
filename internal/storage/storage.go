// Package storage defines the data access contract shared by the Postgres
// and in-memory backends.
//
// Every lookup reports absence as a nil pointer with a nil error. Update
// methods apply only the fields set on the partial input and return nil when
// the row does not exist. Delete methods report whether a row was removed.
package storage

import (
	"context"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

type UserStore interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, in models.CreateUserInput) (*models.User, error)
	// ValidateUser returns the user when the password matches, nil otherwise.
	ValidateUser(ctx context.Context, username, password string) (*models.User, error)
}

type BrandStore interface {
	GetAllBrandCategories(ctx context.Context) ([]models.BrandCategory, error)
	GetBrandCategory(ctx context.Context, id int64) (*models.BrandCategory, error)
	CreateBrandCategory(ctx context.Context, in models.CreateBrandCategoryInput) (*models.BrandCategory, error)
	UpdateBrandCategory(ctx context.Context, id int64, in models.UpdateBrandCategoryInput) (*models.BrandCategory, error)
	DeleteBrandCategory(ctx context.Context, id int64) (bool, error)
	// CountBrandsByCategory maps category id to the number of brands that
	// reference it, including ids of categories that no longer exist.
	CountBrandsByCategory(ctx context.Context) (map[int64]int, error)

	GetAllBrands(ctx context.Context) ([]models.Brand, error)
	GetBrandsByCategory(ctx context.Context, categoryID int64) ([]models.Brand, error)
	GetBrand(ctx context.Context, id int64) (*models.Brand, error)
	CreateBrand(ctx context.Context, in models.CreateBrandInput) (*models.Brand, error)
	UpdateBrand(ctx context.Context, id int64, in models.UpdateBrandInput) (*models.Brand, error)
	DeleteBrand(ctx context.Context, id int64) (bool, error)
}

type BlogStore interface {
	GetAllBlogPosts(ctx context.Context, includeDrafts bool) ([]models.BlogPost, error)
	GetFeaturedBlogPosts(ctx context.Context, limit int) ([]models.BlogPost, error)
	GetBlogPost(ctx context.Context, id int64) (*models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreateBlogPost(ctx context.Context, in models.CreateBlogPostInput) (*models.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id int64, in models.UpdateBlogPostInput) (*models.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id int64) (bool, error)
	IncrementBlogPostViewCount(ctx context.Context, id int64) error
}

type StoreLocationStore interface {
	GetAllStoreLocations(ctx context.Context) ([]models.StoreLocation, error)
	GetStoreLocation(ctx context.Context, id int64) (*models.StoreLocation, error)
	GetStoreLocationByCity(ctx context.Context, city string) (*models.StoreLocation, error)
	CreateStoreLocation(ctx context.Context, in models.CreateStoreLocationInput) (*models.StoreLocation, error)
	UpdateStoreLocation(ctx context.Context, id int64, in models.UpdateStoreLocationInput) (*models.StoreLocation, error)
	DeleteStoreLocation(ctx context.Context, id int64) (bool, error)
}

type ProductStore interface {
	GetAllProductCategories(ctx context.Context) ([]models.ProductCategory, error)
	GetProductCategory(ctx context.Context, id int64) (*models.ProductCategory, error)
	GetProductCategoryBySlug(ctx context.Context, slug string) (*models.ProductCategory, error)
	CreateProductCategory(ctx context.Context, in models.CreateProductCategoryInput) (*models.ProductCategory, error)
	UpdateProductCategory(ctx context.Context, id int64, in models.UpdateProductCategoryInput) (*models.ProductCategory, error)
	DeleteProductCategory(ctx context.Context, id int64) (bool, error)

	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	GetProductByName(ctx context.Context, name string) (*models.Product, error)
	CreateProduct(ctx context.Context, in models.CreateProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, in models.UpdateProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) (bool, error)
}

type NewsletterStore interface {
	GetAllNewsletterSubscriptions(ctx context.Context) ([]models.NewsletterSubscription, error)
	GetNewsletterSubscriptionByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error)
	CreateNewsletterSubscription(ctx context.Context, in models.CreateNewsletterSubscriptionInput) (*models.NewsletterSubscription, error)
	UpdateNewsletterSubscription(ctx context.Context, id int64, in models.UpdateNewsletterSubscriptionInput) (*models.NewsletterSubscription, error)
	DeleteNewsletterSubscription(ctx context.Context, id int64) (bool, error)
}

// Storage is everything the HTTP layer and the operational jobs read and write.
type Storage interface {
	UserStore
	BrandStore
	BlogStore
	StoreLocationStore
	ProductStore
	NewsletterStore
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// SessionStore persists login sessions. Expired sessions read as absent.
type SessionStore interface {
	GetSession(ctx context.Context, sid string) (*models.Session, error)
	SaveSession(ctx context.Context, s models.Session) error
	DestroySession(ctx context.Context, sid string) error
	// PruneSessions deletes expired sessions and returns how many were removed.
	PruneSessions(ctx context.Context) (int64, error)
}
