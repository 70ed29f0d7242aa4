// Package memory is the in-process storage backend used when no database is
// reachable at startup. Every returned value is a copy; callers never alias
// stored rows.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users             map[int64]models.User
	brandCategories   map[int64]models.BrandCategory
	brands            map[int64]models.Brand
	blogPosts         map[int64]models.BlogPost
	storeLocations    map[int64]models.StoreLocation
	productCategories map[int64]models.ProductCategory
	products          map[int64]models.Product
	subscriptions     map[int64]models.NewsletterSubscription
	sessions          map[string]models.Session

	// last id handed out per table
	seq map[string]int64
}

func New() *Store {
	return &Store{
		now:               time.Now,
		users:             map[int64]models.User{},
		brandCategories:   map[int64]models.BrandCategory{},
		brands:            map[int64]models.Brand{},
		blogPosts:         map[int64]models.BlogPost{},
		storeLocations:    map[int64]models.StoreLocation{},
		productCategories: map[int64]models.ProductCategory{},
		products:          map[int64]models.Product{},
		subscriptions:     map[int64]models.NewsletterSubscription{},
		sessions:          map[string]models.Session{},
		seq:               map[string]int64{},
	}
}

// nextID must be called with mu held for writing.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// values returns the map's values sorted with less, ties broken by id.
func values[T any](m map[int64]T, id func(T) int64, less func(a, b T) int) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sortRows(out, id, less)
	return out
}

func duplicate(column, value string) error {
	return fmt.Errorf("%s %q: %w", column, value, models.ErrDuplicate)
}
