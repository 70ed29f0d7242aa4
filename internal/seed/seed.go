// Package seed upserts the embedded shop catalog into a store. Every job is
// idempotent: rows are matched on a natural key and updated in place.
package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/01moynul/vapeshop-golang/internal/models"
	"github.com/01moynul/vapeshop-golang/internal/storage"
)

// Result counts what a seed job did.
type Result struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type Seeder struct {
	store   storage.Storage
	catalog *Catalog
	log     logrus.FieldLogger
}

func New(store storage.Storage, catalog *Catalog, log logrus.FieldLogger) *Seeder {
	return &Seeder{store: store, catalog: catalog, log: log}
}

// SeedStoreLocations matches locations by city, case-insensitively.
func (s *Seeder) SeedStoreLocations(ctx context.Context) (Result, error) {
	var res Result
	for _, loc := range s.catalog.StoreLocations {
		existing, err := s.store.GetStoreLocationByCity(ctx, loc.City)
		if err != nil {
			return res, fmt.Errorf("look up %s: %w", loc.City, err)
		}

		if existing != nil {
			if _, err := s.store.UpdateStoreLocation(ctx, existing.ID, loc.AsUpdate()); err != nil {
				return res, fmt.Errorf("update %s: %w", loc.City, err)
			}
			res.Updated++
			s.log.WithFields(logrus.Fields{"city": loc.City, "id": existing.ID}).Info("Updated store location")
			continue
		}

		created, err := s.store.CreateStoreLocation(ctx, loc)
		if err != nil {
			return res, fmt.Errorf("create %s: %w", loc.City, err)
		}
		res.Created++
		s.log.WithFields(logrus.Fields{"city": loc.City, "id": created.ID}).Info("Created store location")
	}
	return res, nil
}

// SeedProducts matches products by name.
func (s *Seeder) SeedProducts(ctx context.Context) (Result, error) {
	var res Result
	for _, p := range s.catalog.Products {
		existing, err := s.store.GetProductByName(ctx, p.Name)
		if err != nil {
			return res, fmt.Errorf("look up %s: %w", p.Name, err)
		}

		if existing != nil {
			if _, err := s.store.UpdateProduct(ctx, existing.ID, p.AsUpdate()); err != nil {
				return res, fmt.Errorf("update %s: %w", p.Name, err)
			}
			res.Updated++
			continue
		}

		if _, err := s.store.CreateProduct(ctx, p); err != nil {
			return res, fmt.Errorf("create %s: %w", p.Name, err)
		}
		res.Created++
	}
	s.log.WithFields(logrus.Fields{"created": res.Created, "updated": res.Updated}).Info("Seeded products")
	return res, nil
}

// SeedBrands fills an empty brands page. Brand categories are not matched on
// a natural key, so the job skips entirely once any category exists.
func (s *Seeder) SeedBrands(ctx context.Context) (Result, error) {
	var res Result
	existing, err := s.store.GetAllBrandCategories(ctx)
	if err != nil {
		return res, err
	}
	if len(existing) > 0 {
		res.Skipped = len(s.catalog.BrandCategories)
		return res, nil
	}

	for _, cat := range s.catalog.BrandCategories {
		created, err := s.store.CreateBrandCategory(ctx, models.CreateBrandCategoryInput{
			Category:     cat.Category,
			BgClass:      cat.BgClass,
			DisplayOrder: cat.DisplayOrder,
			IntervalMs:   cat.IntervalMs,
		})
		if err != nil {
			return res, fmt.Errorf("create brand category %s: %w", cat.Category, err)
		}
		res.Created++

		for i, b := range cat.Brands {
			_, err := s.store.CreateBrand(ctx, models.CreateBrandInput{
				CategoryID:   created.ID,
				Name:         b.Name,
				Image:        b.Image,
				Description:  b.Description,
				DisplayOrder: i,
			})
			if err != nil {
				return res, fmt.Errorf("create brand %s: %w", b.Name, err)
			}
		}
	}
	return res, nil
}

// SeedAll runs every job. It is how an in-memory store gets its data.
func (s *Seeder) SeedAll(ctx context.Context) error {
	if _, err := s.SeedStoreLocations(ctx); err != nil {
		return err
	}
	if _, err := s.SeedProducts(ctx); err != nil {
		return err
	}
	_, err := s.SeedBrands(ctx)
	return err
}
