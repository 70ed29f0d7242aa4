package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/vapeshop-golang/internal/ai"
	"github.com/01moynul/vapeshop-golang/internal/auth"
	"github.com/01moynul/vapeshop-golang/internal/handlers"
	"github.com/01moynul/vapeshop-golang/internal/metrics"
	"github.com/01moynul/vapeshop-golang/internal/middleware"
	"github.com/01moynul/vapeshop-golang/internal/models"
	"github.com/01moynul/vapeshop-golang/internal/routes"
	"github.com/01moynul/vapeshop-golang/internal/seed"
	"github.com/01moynul/vapeshop-golang/internal/storage/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	adminUser = "admin"
	adminPass = "correct-horse-battery"
)

type fixture struct {
	t       *testing.T
	h       *handlers.Handlers
	router  *gin.Engine
	store   *memory.Store
	metrics *metrics.Metrics
	cookie  *http.Cookie
}

type fakeCopywriter struct {
	draft *ai.MetaDraft
	err   error
}

func (f fakeCopywriter) DraftMeta(_ context.Context, _ models.BlogPost) (*ai.MetaDraft, error) {
	return f.draft, f.err
}

func newFixture(t *testing.T, loginPerMinute int) *fixture {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := memory.New()
	catalog, err := seed.LoadCatalog()
	require.NoError(t, err)

	_, err = store.CreateUser(context.Background(), models.CreateUserInput{
		Username: adminUser, Password: adminPass, IsAdmin: true,
	})
	require.NoError(t, err)

	h := &handlers.Handlers{
		Store:     store,
		Sessions:  auth.NewSessions(store, "handlers-test-secret"),
		Seeder:    seed.New(store, catalog, log),
		Metrics:   metrics.New(),
		Log:       log,
		UploadDir: t.TempDir(),
		PublicURL: "http://shop.test",
	}
	router := routes.SetupRouter(h, routes.Options{
		CORSOrigins:  []string{"http://localhost:5173"},
		UploadDir:    h.UploadDir,
		LoginLimiter: middleware.NewRateLimiter(loginPerMinute, log),
	})
	return &fixture{t: t, h: h, router: router, store: store, metrics: h.Metrics}
}

func (f *fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	f.t.Helper()
	var r *bytes.Reader
	switch b := body.(type) {
	case nil:
		r = bytes.NewReader(nil)
	case string:
		r = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(f.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if f.cookie != nil {
		req.AddCookie(f.cookie)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// login signs in as the bootstrap admin and keeps the cookie for later requests.
func (f *fixture) login() {
	f.t.Helper()
	rec := f.do(http.MethodPost, "/api/auth/login", gin.H{"username": adminUser, "password": adminPass})
	require.Equal(f.t, http.StatusOK, rec.Code, rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			f.cookie = c
		}
	}
	require.NotNil(f.t, f.cookie)
}

// upload posts content as the multipart "file" field of the upload endpoint.
func (f *fixture) upload(name string, content []byte) *httptest.ResponseRecorder {
	f.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(f.t, err)
	_, err = part.Write(content)
	require.NoError(f.t, err)
	require.NoError(f.t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if f.cookie != nil {
		req.AddCookie(f.cookie)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	f := newFixture(t, 5)
	rec := f.do(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLoginFlow(t *testing.T) {
	f := newFixture(t, 100)

	rec := f.do(http.MethodPost, "/api/auth/login", gin.H{"username": adminUser, "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Set-Cookie"))

	rec = f.do(http.MethodPost, "/api/auth/login", gin.H{"username": "nobody", "password": adminPass})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	f.login()
	assert.True(t, f.cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, f.cookie.SameSite)
	assert.Equal(t, "/", f.cookie.Path)

	status := decode[map[string]any](t, f.do(http.MethodGet, "/api/auth/status", nil))
	assert.Equal(t, true, status["authenticated"])
	assert.Equal(t, adminUser, status["user"].(map[string]any)["username"])
	assert.NotContains(t, status["user"], "password")

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/admin/dashboard-stats", nil).Code)

	rec = f.do(http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")

	// The old cookie no longer names a live session.
	status = decode[map[string]any](t, f.do(http.MethodGet, "/api/auth/status", nil))
	assert.Equal(t, false, status["authenticated"])
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/admin/dashboard-stats", nil).Code)
}

func TestLoginIsRateLimited(t *testing.T) {
	f := newFixture(t, 2)
	body := gin.H{"username": adminUser, "password": "wrong-password"}

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/auth/login", body).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/auth/login", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, f.do(http.MethodPost, "/api/auth/login", body).Code)
}

func TestAdminGates(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/admin/brand-categories", gin.H{"category": "X"}).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/products", gin.H{"name": "X"}).Code)

	_, err := f.store.CreateUser(ctx, models.CreateUserInput{Username: "clerk", Password: "clerk-password", IsAdmin: false})
	require.NoError(t, err)
	rec := f.do(http.MethodPost, "/api/auth/login", gin.H{"username": "clerk", "password": "clerk-password"})
	require.Equal(t, http.StatusOK, rec.Code)
	f.cookie = rec.Result().Cookies()[0]

	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/api/admin/brand-categories", gin.H{"category": "X"}).Code)
}

func TestCreateWithMissingFieldIsRejected(t *testing.T) {
	f := newFixture(t, 100)
	f.login()

	rec := f.do(http.MethodPost, "/api/admin/brand-categories", gin.H{"category": "Disposables"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(http.MethodPost, "/api/admin/brands", gin.H{"categoryId": 1, "image": "/geek.png"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[struct {
		Error   string                `json:"error"`
		Details []handlers.FieldError `json:"details"`
	}](t, rec)
	assert.Equal(t, "Invalid request data", body.Error)
	assert.Contains(t, body.Details, handlers.FieldError{Field: "name", Message: "is required"})

	brands := decode[[]map[string]any](t, f.do(http.MethodGet, "/api/brands", nil))
	assert.Empty(t, brands)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/admin/brands", "{not json").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/admin/brands", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/admin/brands", gin.H{"categoryId": "one", "name": "X"}).Code)
}

func TestPartialUpdateChangesOnlySentFields(t *testing.T) {
	f := newFixture(t, 100)
	f.login()

	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/admin/brand-categories", gin.H{"category": "Disposables"}).Code)
	rec := f.do(http.MethodPost, "/api/admin/brands", gin.H{
		"categoryId": 1, "name": "Geek Bar", "image": "/geek.png", "description": "Pulse", "displayOrder": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(http.MethodPut, "/api/admin/brands/1", gin.H{"name": "Geek Bar Pulse"})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[handlers.BrandView](t, f.do(http.MethodGet, "/api/brands/1", nil))
	assert.Equal(t, "Geek Bar Pulse", got.Name)
	assert.Equal(t, "/geek.png", got.Image)
	assert.Equal(t, "Pulse", got.Description)
	assert.Equal(t, 2, got.DisplayOrder)
	assert.Equal(t, int64(1), got.CategoryID)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPut, "/api/admin/brands/1", gin.H{"displayOrder": -1}).Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodPut, "/api/admin/brands/99", gin.H{"name": "X"}).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPut, "/api/admin/brands/abc", gin.H{"name": "X"}).Code)
}

func TestNullClearsOptionalFields(t *testing.T) {
	f := newFixture(t, 100)
	f.login()

	rec := f.do(http.MethodPost, "/api/admin/blog-posts", gin.H{
		"title": "Pod Guide", "summary": "s", "content": "c",
		"featuredImage": "/pods.png", "metaTitle": "Pods", "metaDescription": "All pods",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	post := decode[models.BlogPost](t, rec)
	path := "/api/admin/blog-posts/" + itoa(post.ID)

	// Omitted fields keep their value.
	rec = f.do(http.MethodPut, path, `{"title":"Pod Guide 2026"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	post = decode[models.BlogPost](t, rec)
	require.NotNil(t, post.MetaTitle)
	assert.Equal(t, "Pods", *post.MetaTitle)

	// Null clears them.
	rec = f.do(http.MethodPut, path, `{"featuredImage":null,"metaTitle":null,"metaDescription":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	post = decode[models.BlogPost](t, rec)
	assert.Nil(t, post.FeaturedImage)
	assert.Nil(t, post.MetaTitle)
	assert.Nil(t, post.MetaDescription)
	assert.Equal(t, "Pod Guide 2026", post.Title)

	rec = f.do(http.MethodPut, path, gin.H{"metaTitle": strings.Repeat("x", 256)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "metaTitle")

	// A product price goes back to "call for price".
	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/admin/products", gin.H{
		"name": "Pod Kit", "description": "d", "image": "/k.png", "category": "vapes", "price": "$29.99",
	}).Code)
	rec = f.do(http.MethodPut, "/api/admin/products/1", `{"price":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[models.Product](t, rec)
	assert.Nil(t, p.Price)
	assert.Equal(t, "Pod Kit", p.Name)
}

func TestFeaturedBrandsAlwaysMedium(t *testing.T) {
	f := newFixture(t, 100)
	f.login()

	// Create categories until the featured one has id 7.
	for i := 1; i <= 7; i++ {
		rec := f.do(http.MethodPost, "/api/admin/brand-categories", gin.H{"category": "Cat", "displayOrder": 10 - i})
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/admin/brands", gin.H{
		"categoryId": 7, "name": "Second", "displayOrder": 2, "imageSize": "large",
	}).Code)
	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/admin/brands", gin.H{
		"categoryId": 7, "name": "First", "displayOrder": 1,
	}).Code)

	featured := decode[[]handlers.FeaturedBrandCategory](t, f.do(http.MethodGet, "/api/featured-brands", nil))
	require.Len(t, featured, 7)
	assert.Equal(t, int64(7), featured[0].ID)
	require.Len(t, featured[0].Brands, 2)
	assert.Equal(t, "First", featured[0].Brands[0].Name)
	assert.Equal(t, "Second", featured[0].Brands[1].Name)
	for _, b := range featured[0].Brands {
		assert.Equal(t, handlers.DefaultImageSize, b.ImageSize)
	}
	assert.Empty(t, featured[1].Brands)

	byCat := decode[[]handlers.BrandView](t, f.do(http.MethodGet, "/api/brands?categoryId=7", nil))
	assert.Len(t, byCat, 2)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/brands?categoryId=x", nil).Code)
}

func TestDeletingCategoryOrphansBrands(t *testing.T) {
	f := newFixture(t, 100)
	f.login()

	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/admin/brand-categories", gin.H{"category": "Disposables"}).Code)
	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/admin/brands", gin.H{"categoryId": 1, "name": "Geek Bar"}).Code)

	cats := decode[[]handlers.BrandCategoryView](t, f.do(http.MethodGet, "/api/brand-categories", nil))
	require.Len(t, cats, 1)
	assert.Equal(t, 1, cats[0].BrandCount)

	assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/api/admin/brand-categories/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/brand-categories/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/api/admin/brand-categories/1", nil).Code)

	brand := decode[handlers.BrandView](t, f.do(http.MethodGet, "/api/brands/1", nil))
	assert.Equal(t, int64(1), brand.CategoryID)
}

func TestStoreLocationHours(t *testing.T) {
	f := newFixture(t, 100)
	f.login()
	ctx := context.Background()

	// Two seeded locations plus three created ones puts the target at id 5.
	_, err := f.h.Seeder.SeedStoreLocations(ctx)
	require.NoError(t, err)
	for _, city := range []string{"Plano", "Denton", "Irving"} {
		rec := f.do(http.MethodPost, "/api/admin/store-locations", gin.H{
			"name": "Vape Shop " + city, "city": city, "address": "1 Main St", "phone": "555-0100",
			"services": []string{"Vapes"},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	before := decode[models.StoreLocation](t, f.do(http.MethodGet, "/api/store-locations/5", nil))
	require.Equal(t, "Irving", before.City)

	rec := f.do(http.MethodPut, "/api/admin/store-locations/5/hours", gin.H{
		"opening_hours": gin.H{"Monday": "10:00 AM - 9:00 PM"},
		"closed_days":   "Sunday",
		"hours":         "Mon-Sat 10-9",
		"phone":         "999-9999",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	after := decode[models.StoreLocation](t, f.do(http.MethodGet, "/api/store-locations/5", nil))
	assert.Equal(t, models.StringMap{"Monday": "10:00 AM - 9:00 PM"}, after.OpeningHours)
	assert.Equal(t, "Sunday", after.ClosedDays)
	assert.Equal(t, "Mon-Sat 10-9", after.Hours)
	assert.Equal(t, before.Phone, after.Phone)
	assert.Equal(t, before.Address, after.Address)
	assert.Equal(t, before.Services, after.Services)

	rec = f.do(http.MethodPut, "/api/admin/store-locations/5/hours", gin.H{"opening_hours": "all day"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = f.do(http.MethodPut, "/api/admin/store-locations/5/hours", gin.H{"hours": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = f.do(http.MethodPut, "/api/admin/store-locations/42/hours", gin.H{"opening_hours": gin.H{}})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	byCity := decode[models.StoreLocation](t, f.do(http.MethodGet, "/api/store-locations/city/IRVING", nil))
	assert.Equal(t, int64(5), byCity.ID)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/store-locations/city/Austin", nil).Code)
}

func TestBlogPosts(t *testing.T) {
	f := newFixture(t, 100)
	f.login()

	rec := f.do(http.MethodPost, "/api/admin/blog-posts", gin.H{
		"title": "Best Disposables of 2026", "summary": "s", "content": "c", "published": true, "featured": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	post := decode[models.BlogPost](t, rec)
	assert.Equal(t, "best-disposables-of-2026", post.Slug)

	rec = f.do(http.MethodPost, "/api/admin/blog-posts", gin.H{
		"title": "Another", "slug": "best-disposables-of-2026", "summary": "s", "content": "c",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(http.MethodPost, "/api/admin/blog-posts", gin.H{"title": "???", "summary": "s", "content": "c"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not be derived from the title")

	rec = f.do(http.MethodPost, "/api/admin/blog-posts", gin.H{"title": "Draft", "summary": "s", "content": "c"})
	require.Equal(t, http.StatusCreated, rec.Code)
	draft := decode[models.BlogPost](t, rec)

	public := decode[[]models.BlogPost](t, f.do(http.MethodGet, "/api/blog-posts", nil))
	assert.Len(t, public, 1)
	all := decode[[]models.BlogPost](t, f.do(http.MethodGet, "/api/admin/blog-posts", nil))
	assert.Len(t, all, 2)

	featured := decode[[]models.BlogPost](t, f.do(http.MethodGet, "/api/blog-posts/featured?limit=1", nil))
	assert.Len(t, featured, 1)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/blog-posts/featured?limit=zero", nil).Code)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/blog-posts/slug/draft", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/blog-posts/slug/best-disposables-of-2026", nil).Code)

	// The view is counted in the background.
	assert.Eventually(t, func() bool {
		p, err := f.store.GetBlogPost(context.Background(), post.ID)
		return err == nil && p != nil && p.ViewCount == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(f.metrics.BlogPostViews) == 1
	}, 2*time.Second, 10*time.Millisecond)

	rec = f.do(http.MethodGet, "/api/admin/blog-posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/api/admin/blog-posts/"+itoa(draft.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/blog-posts/"+itoa(draft.ID), nil).Code)
}

func TestDraftMeta(t *testing.T) {
	f := newFixture(t, 100)
	f.login()
	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/admin/blog-posts", gin.H{
		"title": "Delta 8 Guide", "summary": "s", "content": "c",
	}).Code)

	assert.Equal(t, http.StatusServiceUnavailable, f.do(http.MethodPost, "/api/admin/blog-posts/1/draft-meta", nil).Code)

	f.h.Copywriter = fakeCopywriter{draft: &ai.MetaDraft{MetaTitle: "Delta 8 | Vape Shop", MetaDescription: "All about it"}}
	rec := f.do(http.MethodPost, "/api/admin/blog-posts/1/draft-meta", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"metaTitle":"Delta 8 | Vape Shop","metaDescription":"All about it"}`, rec.Body.String())

	// Drafts are not saved.
	p, err := f.store.GetBlogPost(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, p.MetaTitle)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodPost, "/api/admin/blog-posts/9/draft-meta", nil).Code)

	f.h.Copywriter = fakeCopywriter{err: errors.New("quota exceeded")}
	assert.Equal(t, http.StatusBadGateway, f.do(http.MethodPost, "/api/admin/blog-posts/1/draft-meta", nil).Code)
}

func TestProducts(t *testing.T) {
	f := newFixture(t, 100)
	f.login()

	rec := f.do(http.MethodPost, "/api/admin/product-categories", gin.H{"name": "Delta 8 Gummies"})
	require.Equal(t, http.StatusCreated, rec.Code)
	cat := decode[models.ProductCategory](t, rec)
	assert.Equal(t, "delta-8-gummies", cat.Slug)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/product-categories/slug/delta-8-gummies", nil).Code)
	assert.Equal(t, http.StatusConflict, f.do(http.MethodPost, "/api/admin/product-categories", gin.H{"name": "Delta 8 Gummies"}).Code)

	// A name with no sluggable characters is refused, every time.
	for range 2 {
		rec = f.do(http.MethodPost, "/api/admin/product-categories", gin.H{"name": "!!!"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "could not be derived from the name")
	}
	assert.Len(t, decode[[]models.ProductCategory](t, f.do(http.MethodGet, "/api/product-categories", nil)), 1)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPut, "/api/admin/product-categories/"+itoa(cat.ID), gin.H{"slug": "   "}).Code)

	rec = f.do(http.MethodPost, "/api/products", gin.H{
		"name": "Gummies", "description": "d", "image": "/g.png", "category": "delta-8-gummies", "featured": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	assert.Len(t, decode[[]models.Product](t, f.do(http.MethodGet, "/api/products/featured", nil)), 1)
	assert.Len(t, decode[[]models.Product](t, f.do(http.MethodGet, "/api/products/category/delta-8-gummies", nil)), 1)

	rec = f.do(http.MethodPut, "/api/admin/products/1", gin.H{"stock": 12})
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[models.Product](t, rec)
	assert.Equal(t, 12, p.Stock)
	assert.Equal(t, "Gummies", p.Name)
	assert.Nil(t, p.Price)

	rec = f.do(http.MethodPost, "/api/admin/seed-products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/api/admin/products/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/products/1", nil).Code)
}

func TestNewsletterSubscribe(t *testing.T) {
	f := newFixture(t, 100)

	rec := f.do(http.MethodPost, "/api/newsletter/subscribe", gin.H{"email": "  Fan@Example.com ", "source": "footer"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(http.MethodPost, "/api/newsletter/subscribe", gin.H{"email": "fan@example.com"})
	assert.Equal(t, http.StatusOK, rec.Code)

	sub, err := f.store.GetNewsletterSubscriptionByEmail(context.Background(), "fan@example.com")
	require.NoError(t, err)
	require.NotNil(t, sub)
	inactive := false
	_, err = f.store.UpdateNewsletterSubscription(context.Background(), sub.ID, models.UpdateNewsletterSubscriptionInput{IsActive: &inactive})
	require.NoError(t, err)

	rec = f.do(http.MethodPost, "/api/newsletter/subscribe", gin.H{"email": "fan@example.com"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reactivated")

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/newsletter/subscribe", gin.H{"email": "not-an-email"}).Code)

	f.login()
	subs := decode[[]models.NewsletterSubscription](t, f.do(http.MethodGet, "/api/admin/newsletter-subscriptions", nil))
	require.Len(t, subs, 1)
	assert.True(t, subs[0].IsActive)

	stats := decode[models.DashboardStats](t, f.do(http.MethodGet, "/api/admin/dashboard-stats", nil))
	assert.Equal(t, int64(1), stats.Subscribers)
	assert.Equal(t, int64(1), stats.ActiveSubscribers)
	assert.Equal(t, int64(1), stats.Users)
}

func TestSubscriberIPIgnoresForwardedFor(t *testing.T) {
	f := newFixture(t, 100)

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(`{"email":"xff@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	sub, err := f.store.GetNewsletterSubscriptionByEmail(context.Background(), "xff@example.com")
	require.NoError(t, err)
	require.NotNil(t, sub)
	require.NotNil(t, sub.IPAddress)
	assert.Equal(t, "192.0.2.1", *sub.IPAddress)
}

func TestCreateUser(t *testing.T) {
	f := newFixture(t, 100)
	f.login()

	rec := f.do(http.MethodPost, "/api/admin/users", gin.H{"username": "editor", "password": "editor-password"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "editor-password")

	assert.Equal(t, http.StatusConflict, f.do(http.MethodPost, "/api/admin/users", gin.H{"username": "editor", "password": "editor-password"}).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/admin/users", gin.H{"username": "ed", "password": "short"}).Code)
}

func TestUploadFile(t *testing.T) {
	f := newFixture(t, 100)
	f.login()

	upload := func(name string) *httptest.ResponseRecorder {
		return f.upload(name, []byte("\x89PNG\r\n\x1a\n"))
	}

	rec := upload("logo.PNG")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	url := decode[map[string]string](t, rec)["url"]
	require.True(t, strings.HasPrefix(url, "http://shop.test/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := strings.TrimPrefix(url, "http://shop.test/uploads/")
	_, err := os.Stat(filepath.Join(f.h.UploadDir, name))
	assert.NoError(t, err)

	// Uploaded files are served back.
	served := f.do(http.MethodGet, "/uploads/"+name, nil)
	assert.Equal(t, http.StatusOK, served.Code)

	assert.Equal(t, http.StatusBadRequest, upload("script.sh").Code)
}

func TestUploadTooLarge(t *testing.T) {
	f := newFixture(t, 100)
	f.login()

	// Just over the file cap: the body is read, the size check refuses it.
	rec := f.upload("big.png", bytes.Repeat([]byte{0}, handlers.MaxUploadSize+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	// Far over: reading stops at the body cap.
	rec = f.upload("huge.png", bytes.Repeat([]byte{0}, 2*handlers.MaxUploadSize))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "File is too large")

	entries, err := os.ReadDir(f.h.UploadDir)
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, 100)
	f.do(http.MethodGet, "/api/health", nil)

	rec := f.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `vapeshop_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
