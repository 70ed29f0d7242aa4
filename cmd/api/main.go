package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/01moynul/vapeshop-golang/internal/ai"
	"github.com/01moynul/vapeshop-golang/internal/auth"
	"github.com/01moynul/vapeshop-golang/internal/config"
	"github.com/01moynul/vapeshop-golang/internal/handlers"
	"github.com/01moynul/vapeshop-golang/internal/jobs"
	"github.com/01moynul/vapeshop-golang/internal/logging"
	"github.com/01moynul/vapeshop-golang/internal/metrics"
	"github.com/01moynul/vapeshop-golang/internal/middleware"
	"github.com/01moynul/vapeshop-golang/internal/routes"
	"github.com/01moynul/vapeshop-golang/internal/seed"
	"github.com/01moynul/vapeshop-golang/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 0. --- Load Configuration (.env + environment) ---
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. --- Storage (Postgres, or seeded memory when unavailable) ---
	catalog, err := seed.LoadCatalog()
	if err != nil {
		log.WithError(err).Fatal("Failed to load seed catalog")
	}
	opened, err := storage.Open(ctx, storage.Options{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DBMaxConns,
		SkipMigrations: cfg.SkipMigrate,
		Seed: func(ctx context.Context, s storage.Storage) error {
			return seed.New(s, catalog, log).SeedAll(ctx)
		},
	}, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open storage")
	}
	defer opened.Close()

	m := metrics.New()
	m.SetStorageBackend(string(opened.Backend))

	// 2. --- Bootstrap admin (optional) ---
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		u, created, err := seed.EnsureAdmin(ctx, opened.Store, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			log.WithError(err).Fatal("Failed to create bootstrap admin")
		}
		if created {
			log.WithField("user_id", u.ID).Info("Bootstrap admin created")
		}
	}

	// 3. --- AI Copywriter (optional) ---
	app := &handlers.Handlers{
		Store:        opened.Store,
		Sessions:     auth.NewSessions(opened.Sessions, cfg.SessionSecret),
		Seeder:       seed.New(opened.Store, catalog, log),
		Metrics:      m,
		Log:          log,
		UploadDir:    cfg.UploadDir,
		PublicURL:    cfg.PublicURL,
		CookieSecure: cfg.CookieSecure,
	}
	if cfg.GeminiAPIKey != "" {
		copywriter, err := ai.NewCopywriter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.WithError(err).Warn("AI copywriter unavailable")
		} else {
			defer copywriter.Close()
			app.Copywriter = copywriter
		}
	}

	// 4. --- Background Workers (Cron) ---
	limiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute, log)
	scheduler := jobs.New(opened.Sessions, limiter, m, log)
	if err := scheduler.Start(); err != nil {
		log.WithError(err).Fatal("Failed to start background jobs")
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, routes.Options{
		CORSOrigins:    cfg.CORSOrigins,
		UploadDir:      cfg.UploadDir,
		LoginLimiter:   limiter,
		TrustedProxies: cfg.TrustedProxies,
	})
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Start Server ---
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "backend": opened.Backend}).Info("Starting vape shop API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server did not shut down cleanly")
	}
	scheduler.Stop(shutdownCtx)
}
