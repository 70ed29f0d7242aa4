package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/01moynul/vapeshop-golang/internal/seed"
	"github.com/01moynul/vapeshop-golang/internal/storage/postgres"
)

var (
	adminUsername string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	Long: `Create an admin account unless the username already exists.

The password comes from --password or the ADMIN_PASSWORD environment
variable. There is no default.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := adminPasswordFrom(adminPassword, os.Getenv("ADMIN_PASSWORD"))
		if err != nil {
			return err
		}

		e, err := loadEnv()
		if err != nil {
			return err
		}
		db, err := e.openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		u, created, err := seed.EnsureAdmin(cmd.Context(), postgres.New(db), adminUsername, password)
		if err != nil {
			return err
		}
		if !created {
			return printResult(cmd.OutOrStdout(), map[string]any{"created": false, "user": u},
				"User %q already exists (id %d)", u.Username, u.ID)
		}
		return printResult(cmd.OutOrStdout(), map[string]any{"created": true, "user": u},
			"Admin %q created (id %d)", u.Username, u.ID)
	},
}

func init() {
	rootCmd.AddCommand(createAdminCmd)

	createAdminCmd.Flags().StringVarP(&adminUsername, "username", "u", "", "Admin username")
	createAdminCmd.Flags().StringVarP(&adminPassword, "password", "p", "", "Admin password (or ADMIN_PASSWORD)")
	_ = createAdminCmd.MarkFlagRequired("username")
}

func adminPasswordFrom(flag, env string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env != "" {
		return env, nil
	}
	return "", errors.New("a password is required: pass --password or set ADMIN_PASSWORD")
}
