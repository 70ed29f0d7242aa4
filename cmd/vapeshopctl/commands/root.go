// Package commands implements vapeshopctl, the operator CLI for schema
// migrations, seed jobs, data copies and admin accounts.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/01moynul/vapeshop-golang/internal/config"
	"github.com/01moynul/vapeshop-golang/internal/database"
	"github.com/01moynul/vapeshop-golang/internal/logging"
)

var (
	// Global flags
	dbURL      string
	jsonOutput bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "vapeshopctl",
	Short: "Operator tooling for the vape shop API",
	Long: `vapeshopctl runs the jobs that sit next to the API server:

  - schema migrations
  - idempotent seeding of store locations and products
  - copying every table from one Postgres database to another
  - creating admin accounts and pruning expired sessions

Settings are read from the environment (and .env) exactly like the server.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (defaults to DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (defaults to LOG_LEVEL)")
}

// env bundles what every command needs.
type env struct {
	cfg *config.Config
	log *logrus.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	return &env{cfg: cfg, log: logging.NewWithOutput(os.Stderr, level, cfg.LogFormat)}, nil
}

// databaseURL is --db, or DATABASE_URL.
func (e *env) databaseURL() (string, error) {
	if dbURL != "" {
		return dbURL, nil
	}
	if e.cfg.DatabaseURL != "" {
		return e.cfg.DatabaseURL, nil
	}
	return "", errors.New("no database configured: pass --db or set DATABASE_URL")
}

func (e *env) openDB(ctx context.Context) (*sqlx.DB, error) {
	dsn, err := e.databaseURL()
	if err != nil {
		return nil, err
	}
	return database.Open(ctx, dsn, e.cfg.DBMaxConns)
}

// printResult writes v as JSON with --json, or the human line otherwise.
func printResult(w io.Writer, v any, human string, args ...any) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintf(w, human+"\n", args...)
	return err
}
