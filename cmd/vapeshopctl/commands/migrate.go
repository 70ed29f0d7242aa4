package commands

import (
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/01moynul/vapeshop-golang/internal/database"
)

var downSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd, database.MigrateUp)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Long: `Roll back the given number of migrations (default 1).

Examples:
  vapeshopctl migrate down             # Undo the latest migration
  vapeshopctl migrate down --steps 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd, func(db *sqlx.DB) error {
			return database.MigrateDown(db, downSteps)
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)

	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "Number of migrations to roll back")
}

// runMigrate runs fn and reports the resulting schema version.
func runMigrate(cmd *cobra.Command, fn func(db *sqlx.DB) error) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	db, err := e.openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := fn(db); err != nil {
		return err
	}
	version, dirty, err := database.MigrationVersion(db)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(),
		map[string]any{"version": version, "dirty": dirty},
		"Schema at version %d (dirty: %t)", version, dirty)
}
