package cmd

import (
	"fmt"

	"catalog-sync/core/catalog"
	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the catalog schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		err = db.AutoMigrate(
			&catalog.Currency{},
			&catalog.Product{},
			&catalog.ProductPrice{},
		)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		l.Info("Schema migrated", zap.String("database", cfg.Database.Name))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
