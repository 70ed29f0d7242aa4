package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/01moynul/vapeshop-golang/internal/database"
	"github.com/01moynul/vapeshop-golang/internal/storage/memory"
	"github.com/01moynul/vapeshop-golang/internal/storage/postgres"
)

var (
	_ Storage      = (*postgres.Store)(nil)
	_ SessionStore = (*postgres.Store)(nil)
	_ Storage      = (*memory.Store)(nil)
	_ SessionStore = (*memory.Store)(nil)
)

type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendMemory   Backend = "memory"
)

// Options control backend selection.
type Options struct {
	DatabaseURL    string
	MaxConns       int
	SkipMigrations bool
	// Seed fills a freshly created in-memory store. Optional.
	Seed func(ctx context.Context, s Storage) error
}

// Opened is the backend chosen at startup. DB is nil for the memory backend.
type Opened struct {
	Store    Storage
	Sessions SessionStore
	Backend  Backend
	DB       *sqlx.DB
}

// Close releases the database pool, if any.
func (o *Opened) Close() error {
	if o.DB == nil {
		return nil
	}
	return o.DB.Close()
}

// Open picks the storage backend once for the lifetime of the process. A
// reachable database is used (after migrating it); when DatabaseURL is empty
// or the database cannot be reached, the process runs on a seeded in-memory
// store instead.
func Open(ctx context.Context, opts Options, log logrus.FieldLogger) (*Opened, error) {
	if opts.DatabaseURL != "" {
		db, err := database.Open(ctx, opts.DatabaseURL, opts.MaxConns)
		if err == nil {
			if !opts.SkipMigrations {
				if err := database.MigrateUp(db); err != nil {
					db.Close()
					return nil, err
				}
			}
			log.WithField("backend", BackendPostgres).Info("Storage backend selected")
			store := postgres.New(db)
			return &Opened{Store: store, Sessions: store, Backend: BackendPostgres, DB: db}, nil
		}
		log.WithError(err).Warn("Database unavailable, falling back to in-memory storage")
	}

	store := memory.New()
	if opts.Seed != nil {
		if err := opts.Seed(ctx, store); err != nil {
			return nil, fmt.Errorf("seed memory store: %w", err)
		}
	}
	log.WithField("backend", BackendMemory).Info("Storage backend selected")
	return &Opened{Store: store, Sessions: store, Backend: BackendMemory}, nil
}
