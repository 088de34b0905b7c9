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
	"catalog-sync/feature/stock"

	"github.com/spf13/cobra"
)

var stockBatchFile string

// stockCmd applies a stock update batch from a JSON file, using the same
// service the HTTP endpoint uses.
var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Apply a stock update batch from a JSON file",
	Long: `Apply a stock update batch against the live catalog partition.

The file holds the same JSON body the stock-update endpoint accepts:

  {"updates": [{"productNumber": "SW-1001", "stock": 25, "threshold": 10}]}

The per-product result map is printed as JSON.`,
	RunE: runStockBatch,
}

func init() {
	stockCmd.Flags().StringVar(&stockBatchFile, "file", "", "Path to the JSON batch file (required)")
	_ = stockCmd.MarkFlagRequired("file")
	RootCmd.AddCommand(stockCmd)
}

func runStockBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	data, err := os.ReadFile(stockBatchFile)
	if err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}

	var req stock.UpdateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse batch file: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	service := stock.NewService(db, l, stock.NewLogNotifier(l))
	results, err := service.UpdateStock(context.Background(), catalog.LiveVersion, req)
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
