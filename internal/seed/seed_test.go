package seed

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/vapeshop-golang/internal/models"
	"github.com/01moynul/vapeshop-golang/internal/storage/memory"
)

func newSeeder(t *testing.T) (*Seeder, *memory.Store) {
	t.Helper()
	catalog, err := LoadCatalog()
	require.NoError(t, err)
	log, _ := test.NewNullLogger()
	store := memory.New()
	return New(store, catalog, log), store
}

func TestCatalogDecodes(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	require.Len(t, c.StoreLocations, 2)
	frisco := c.StoreLocations[0]
	assert.Equal(t, "Frisco", frisco.City)
	assert.Equal(t, "6958 Main St #200", frisco.Address)
	assert.Equal(t, "75033", frisco.ZipCode)
	assert.Equal(t, "10:00 AM - 12:00 AM", frisco.OpeningHours["Monday"])
	assert.Contains(t, frisco.Services, "Vapes")

	assert.NotEmpty(t, c.Products)
	for _, p := range c.Products {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category, p.Name)
	}
	assert.NotEmpty(t, c.BrandCategories)
}

func TestSeedStoreLocationsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, store := newSeeder(t)

	res, err := s.SeedStoreLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 2}, res)

	res, err = s.SeedStoreLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Updated: 2}, res)

	all, err := store.GetAllStoreLocations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSeedStoreLocationsUpdatesByCityIgnoringCase(t *testing.T) {
	ctx := context.Background()
	s, store := newSeeder(t)
	stale, err := store.CreateStoreLocation(ctx, models.CreateStoreLocationInput{
		Name: "old", City: "FRISCO", Address: "old", Phone: "old",
	})
	require.NoError(t, err)

	res, err := s.SeedStoreLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 1, Updated: 1}, res)

	got, err := store.GetStoreLocation(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, "Frisco", got.City)
	assert.Equal(t, "6958 Main St #200", got.Address)
}

func TestSeedProductsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, store := newSeeder(t)

	first, err := s.SeedProducts(ctx)
	require.NoError(t, err)
	second, err := s.SeedProducts(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Created, second.Updated)
	assert.Zero(t, second.Created)
	all, _ := store.GetAllProducts(ctx)
	assert.Len(t, all, first.Created)
}

func TestSeedBrandsOnlyFillsEmptyStore(t *testing.T) {
	ctx := context.Background()
	s, store := newSeeder(t)

	res, err := s.SeedBrands(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(s.catalog.BrandCategories), res.Created)

	cats, _ := store.GetAllBrandCategories(ctx)
	brands, _ := store.GetBrandsByCategory(ctx, cats[0].ID)
	assert.Len(t, brands, len(s.catalog.BrandCategories[0].Brands))
	assert.Equal(t, models.DefaultCarouselIntervalMs, cats[0].IntervalMs)

	res, err = s.SeedBrands(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.Created)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	_, store := newSeeder(t)

	u, created, err := EnsureAdmin(ctx, store, "owner", "owner-password")
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, u.IsAdmin)

	again, created, err := EnsureAdmin(ctx, store, "owner", "different-password")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)

	valid, err := store.ValidateUser(ctx, "owner", "owner-password")
	require.NoError(t, err)
	assert.NotNil(t, valid)

	_, _, err = EnsureAdmin(ctx, store, "owner", "")
	assert.Error(t, err)
}
