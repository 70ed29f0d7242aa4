package commands

import (
	"github.com/spf13/cobra"

	"github.com/01moynul/vapeshop-golang/internal/jobs"
	"github.com/01moynul/vapeshop-golang/internal/storage/postgres"
)

var pruneSessionsCmd = &cobra.Command{
	Use:   "prune-sessions",
	Short: "Delete expired login sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		db, err := e.openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := jobs.New(postgres.New(db), nil, nil, e.log).PruneSessions(cmd.Context())
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), map[string]any{"removed": n}, "Removed %d expired sessions", n)
	},
}

func init() {
	rootCmd.AddCommand(pruneSessionsCmd)
}
