package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"catalog-sync/core/catalog"
	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/feature/price"

	"github.com/spf13/cobra"
)

var priceBatchFile string

// priceCmd applies a price update batch from a JSON file, using the same
// service the HTTP endpoint uses.
var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Apply a price update batch from a JSON file",
	Long: `Apply a price update batch against the live catalog partition.

The file holds the same JSON body the price-update endpoint accepts:

  {"updates": [{"productNumber": "SW-1001", "price": {"EUR": {"net": 10, "gross": 11.9}}}]}

The per-product result map is printed as JSON.`,
	RunE: runPriceBatch,
}

func init() {
	priceCmd.Flags().StringVar(&priceBatchFile, "file", "", "Path to the JSON batch file (required)")
	_ = priceCmd.MarkFlagRequired("file")
	RootCmd.AddCommand(priceCmd)
}

func runPriceBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	data, err := os.ReadFile(priceBatchFile)
	if err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}

	var req price.UpdateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse batch file: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	service := price.NewService(db, l)
	results, err := service.UpdatePrices(context.Background(), catalog.LiveVersion, req)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(map[string]any{"results": results}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
