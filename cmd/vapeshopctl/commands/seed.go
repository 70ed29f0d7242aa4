package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/01moynul/vapeshop-golang/internal/seed"
	"github.com/01moynul/vapeshop-golang/internal/storage/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert the embedded catalog into the database",
	Long: `Seed jobs match rows on a natural key and update them in place, so they
are safe to run repeatedly.`,
}

var seedLocationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Upsert store locations (matched by city)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd, "Store locations", (*seed.Seeder).SeedStoreLocations)
	},
}

var seedProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Upsert products (matched by name)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd, "Products", (*seed.Seeder).SeedProducts)
	},
}

var seedBrandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "Create the brand carousels when none exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd, "Brands", (*seed.Seeder).SeedBrands)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.AddCommand(seedLocationsCmd, seedProductsCmd, seedBrandsCmd)
}

func runSeed(cmd *cobra.Command, what string, job func(*seed.Seeder, context.Context) (seed.Result, error)) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	db, err := e.openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	catalog, err := seed.LoadCatalog()
	if err != nil {
		return err
	}
	res, err := job(seed.New(postgres.New(db), catalog, e.log), cmd.Context())
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), res,
		"%s seeded: %d created, %d updated, %d skipped", what, res.Created, res.Updated, res.Skipped)
}
