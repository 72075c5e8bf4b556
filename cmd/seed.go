package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YelzhanWeb/aquave/internal/adapter/file"
	"github.com/YelzhanWeb/aquave/internal/adapter/logger"
	"github.com/YelzhanWeb/aquave/internal/adapter/memory"
	"github.com/YelzhanWeb/aquave/internal/adapter/postgres"
	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

func newSeedCmd() *cobra.Command {
	var from, path string

	cmd := &cobra.Command{
		Use:   "catalog-seed",
		Short: "Replace the PostgreSQL catalog with the builtin drinks or a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			lgr, err := logger.NewWithLevel("catalog-seed", cfg.Logging.Level)
			if err != nil {
				return err
			}

			src, err := seedSource(from, path)
			if err != nil {
				return err
			}

			db, err := postgres.Connect(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			return seedCatalog(cmd.Context(), src, postgres.NewCatalogRepository(db), lgr)
		},
	}
	cmd.Flags().StringVar(&from, "from", "builtin", "seed source: builtin or file")
	cmd.Flags().StringVar(&path, "path", "", "YAML catalog when --from=file")
	return cmd
}

func seedSource(from, path string) (interfaces.CatalogRepository, error) {
	switch from {
	case "builtin":
		return memory.NewCatalogRepository(), nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("--path is required with --from=file")
		}
		return file.NewCatalogRepository(path), nil
	default:
		return nil, fmt.Errorf("unknown seed source %q", from)
	}
}

func seedCatalog(ctx context.Context, src interfaces.CatalogRepository, dst interfaces.CatalogWriter, lgr logger.Logger) error {
	drinks, err := src.ListDrinks(ctx)
	if err != nil {
		return fmt.Errorf("failed to read seed catalog: %w", err)
	}
	if err := dst.SaveDrinks(ctx, drinks); err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}
	lgr.Info("catalog_seeded", fmt.Sprintf("Stored %d drinks", len(drinks)), "", map[string]interface{}{
		"count": len(drinks),
	})
	return nil
}
