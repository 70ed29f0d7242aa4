package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/01moynul/vapeshop-golang/internal/config"
	"github.com/01moynul/vapeshop-golang/internal/database"
	"github.com/01moynul/vapeshop-golang/internal/datacopy"
)

var (
	// Copy flags
	copyFrom        string
	copyTo          string
	copyTables      []string
	copySkipMigrate bool
)

var copyDataCmd = &cobra.Command{
	Use:   "copy-data",
	Short: "Copy every table from one Postgres database to another",
	Long: `Copy the catalog tables from a source database to a target database,
keeping ids. Rows already present on the target are skipped; rows that fail
are logged and counted while the copy continues. Each id sequence is moved
past the copied rows afterwards.

The source defaults to --db / DATABASE_URL. The target defaults to
SUPABASE_DB_URL, or a DSN built from SUPABASE_URL and SUPABASE_DB_PASSWORD.

Examples:
  vapeshopctl copy-data --to postgres://...                 # Everything
  vapeshopctl copy-data --tables brands,brand_categories    # Some tables`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCopyData(cmd)
	},
}

func init() {
	rootCmd.AddCommand(copyDataCmd)

	copyDataCmd.Flags().StringVar(&copyFrom, "from", "", "Source database URL")
	copyDataCmd.Flags().StringVar(&copyTo, "to", "", "Target database URL")
	copyDataCmd.Flags().StringSliceVar(&copyTables, "tables", nil, "Tables to copy (default: all)")
	copyDataCmd.Flags().BoolVar(&copySkipMigrate, "skip-migrate", false, "Do not migrate the target first")
}

// copyEndpoints resolves the source and target DSNs from flags and config.
func copyEndpoints(cfg *config.Config, from, to string) (string, string, error) {
	if from == "" {
		from = cfg.DatabaseURL
	}
	if from == "" {
		return "", "", errors.New("no source database: pass --from, --db or set DATABASE_URL")
	}
	if to == "" {
		dsn, err := cfg.SupabaseDSN()
		if err != nil {
			return "", "", fmt.Errorf("no target database: pass --to or %w", err)
		}
		to = dsn
	}
	if from == to {
		return "", "", errors.New("source and target are the same database")
	}
	return from, to, nil
}

func runCopyData(cmd *cobra.Command) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	from := copyFrom
	if from == "" {
		from = dbURL
	}
	from, to, err := copyEndpoints(e.cfg, from, copyTo)
	if err != nil {
		return err
	}

	src, err := database.Open(ctx, from, e.cfg.DBMaxConns)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	defer src.Close()
	dst, err := database.Open(ctx, to, e.cfg.DBMaxConns)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	defer dst.Close()

	if !copySkipMigrate {
		if err := database.MigrateUp(dst); err != nil {
			return fmt.Errorf("target: %w", err)
		}
	}

	report, err := datacopy.New(src, dst, e.log).Copy(ctx, copyTables)
	if jsonOutput {
		if perr := printResult(cmd.OutOrStdout(), report, ""); perr != nil {
			return perr
		}
	} else {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TABLE\tREAD\tCOPIED\tSKIPPED\tFAILED")
		for _, t := range report.Tables {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", t.Table, t.Read, t.Copied, t.Skipped, t.Failed)
		}
		w.Flush()
	}
	if err != nil {
		return err
	}
	if n := report.Failed(); n > 0 {
		e.log.WithField("failed", n).Warn("Some rows were not copied")
	}
	return nil
}
