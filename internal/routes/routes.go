package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/vapeshop-golang/internal/handlers"
	"github.com/01moynul/vapeshop-golang/internal/middleware"
)

// Options carries the router settings that do not live on Handlers.
type Options struct {
	CORSOrigins  []string
	UploadDir    string
	LoginLimiter *middleware.RateLimiter

	// TrustedProxies may set X-Forwarded-For. Nil trusts no proxy, so
	// c.ClientIP() is the socket peer.
	TrustedProxies []string
}

func SetupRouter(h *handlers.Handlers, opts Options) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		h.Log.WithError(err).Error("Invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}

	// --- Global middleware ---
	// CORS must run first so preflight requests are answered before anything else.
	router.Use(middleware.CORS(opts.CORSOrigins))
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(h.Log))
	router.Use(middleware.Metrics(h.Metrics))

	router.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	router.Static("/uploads", opts.UploadDir)

	requireAuth := middleware.RequireAuth(h.Sessions, h.Log)
	requireAdmin := middleware.RequireAdmin(h.Store, h.Log)

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)

		// --- Auth Routes (Public) ---
		login := []gin.HandlerFunc{}
		if opts.LoginLimiter != nil {
			login = append(login, opts.LoginLimiter.Handler())
		}
		api.POST("/auth/login", append(login, h.Login)...)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/status", h.AuthStatus)

		// --- Brands (Public) ---
		api.GET("/brand-categories", h.GetAllBrandCategories)
		api.GET("/brand-categories/:id", h.GetBrandCategory)
		api.GET("/brands", h.GetAllBrands)
		api.GET("/brands/:id", h.GetBrand)
		api.GET("/featured-brands", h.GetFeaturedBrands)

		// --- Blog (Public) ---
		api.GET("/blog-posts", h.GetPublishedBlogPosts)
		api.GET("/blog-posts/featured", h.GetFeaturedBlogPosts)
		api.GET("/blog-posts/slug/:slug", h.GetBlogPostBySlug)
		api.GET("/blog-posts/:id", h.GetBlogPost)

		// --- Store Locations (Public) ---
		api.GET("/store-locations", h.GetAllStoreLocations)
		api.GET("/store-locations/city/:city", h.GetStoreLocationByCity)
		api.GET("/store-locations/:id", h.GetStoreLocation)

		// --- Products (Public) ---
		api.GET("/product-categories", h.GetAllProductCategories)
		api.GET("/product-categories/slug/:slug", h.GetProductCategoryBySlug)
		api.GET("/product-categories/:id", h.GetProductCategory)
		api.GET("/products", h.GetAllProducts)
		api.GET("/products/featured", h.GetFeaturedProducts)
		api.GET("/products/category/:category", h.GetProductsByCategory)
		api.GET("/products/:id", h.GetProduct)
		api.POST("/products", requireAuth, requireAdmin, h.CreateProduct)

		// --- Newsletter (Public) ---
		api.POST("/newsletter/subscribe", h.Subscribe)

		// --- Admin Routes (Protected) ---
		admin := api.Group("/admin")
		admin.Use(requireAuth, requireAdmin)
		{
			admin.POST("/users", h.CreateUser)
			admin.GET("/dashboard-stats", h.GetDashboardStats)

			admin.POST("/brand-categories", h.CreateBrandCategory)
			admin.PUT("/brand-categories/:id", h.UpdateBrandCategory)
			admin.DELETE("/brand-categories/:id", h.DeleteBrandCategory)
			admin.POST("/brands", h.CreateBrand)
			admin.PUT("/brands/:id", h.UpdateBrand)
			admin.DELETE("/brands/:id", h.DeleteBrand)

			admin.GET("/blog-posts", h.GetAllBlogPosts)
			admin.POST("/blog-posts", h.CreateBlogPost)
			admin.PUT("/blog-posts/:id", h.UpdateBlogPost)
			admin.DELETE("/blog-posts/:id", h.DeleteBlogPost)
			admin.POST("/blog-posts/:id/draft-meta", h.DraftBlogPostMeta)

			admin.POST("/store-locations", h.CreateStoreLocation)
			admin.PUT("/store-locations/:id", h.UpdateStoreLocation)
			admin.PUT("/store-locations/:id/hours", h.UpdateStoreLocationHours)
			admin.DELETE("/store-locations/:id", h.DeleteStoreLocation)

			admin.POST("/product-categories", h.CreateProductCategory)
			admin.PUT("/product-categories/:id", h.UpdateProductCategory)
			admin.DELETE("/product-categories/:id", h.DeleteProductCategory)
			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)

			admin.POST("/seed-store-locations", h.SeedStoreLocations)
			admin.POST("/seed-products", h.SeedProducts)

			admin.GET("/newsletter-subscriptions", h.GetAllNewsletterSubscriptions)
			admin.DELETE("/newsletter-subscriptions/:id", h.DeleteNewsletterSubscription)

			admin.POST("/uploads", h.UploadFile)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
