package cli

import (
	"fmt"
	"os"

	"github.com/Rovan44/shopping-app-44/internal/seed"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var catalogFile string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalog and default payment modes into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogFile)
			if err != nil {
				return err
			}

			cfg, err := loadPostgresConfig()
			if err != nil {
				return err
			}
			uow, closeStore, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			result, err := seed.Run(cmd.Context(), uow, catalog)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d categories, %d products, %d payment modes\n",
				result.Categories, result.Products, result.PaymentModes)
			return nil
		},
	}

	cmd.Flags().StringVarP(&catalogFile, "catalog", "c", "", "YAML catalog to load instead of the built-in one")
	return cmd
}

func loadCatalog(path string) (*seed.Catalog, error) {
	if path == "" {
		return seed.DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return seed.ParseCatalog(data)
}
