package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eatelligence/scanner/config"
	"github.com/eatelligence/scanner/internal/domain"
	"github.com/eatelligence/scanner/internal/infrastructure/cache"
	"github.com/eatelligence/scanner/internal/infrastructure/openfoodfacts"
	"github.com/eatelligence/scanner/internal/infrastructure/stores"
	"github.com/eatelligence/scanner/internal/scan"
	"github.com/eatelligence/scanner/internal/usecase"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "eatelligence",
	Short: "Barcode-driven nutrition lookup and recommendation tool",
	Long:  "Decodes product barcodes, fetches Open Food Facts nutrition data, computes a health score, and suggests healthier alternatives and stores.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		return nil
	},
}

// Execute runs the root command
func Execute() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(storesCmd)
}

// app bundles the wired services shared by the commands
type app struct {
	scannerService *usecase.ScannerService
	storeService   *usecase.StoreService
	barcodeScanner *scan.Scanner
}

// buildApp wires infrastructure and usecase layers from the loaded config
func buildApp(ctx context.Context) (*app, error) {
	offClient := openfoodfacts.NewClient(cfg.OFF.BaseURL, cfg.OFF.UserAgent, cfg.OFF.RatePerMin)
	memoryCache := cache.NewMemoryCache()

	scannerService := usecase.NewScannerService(memoryCache, offClient, usecase.ScannerServiceConfig{
		CacheTTL:              cfg.Cache.TTL,
		CountryTag:            cfg.OFF.CountryTag,
		AlternativesThreshold: cfg.Scoring.AlternativesThreshold,
		SearchPageSize:        cfg.OFF.PageSize,
	})

	finder, err := buildStoreFinder(ctx, offClient)
	if err != nil {
		return nil, err
	}
	storeService := usecase.NewStoreService(finder, cfg.Stores.Timeout)

	barcodeScanner := scan.NewScanner(scan.NewZXingDecoder(), scan.Mode(cfg.Scan.Mode))

	return &app{
		scannerService: scannerService,
		storeService:   storeService,
		barcodeScanner: barcodeScanner,
	}, nil
}

// buildStoreFinder selects the configured store-suggestion backend
func buildStoreFinder(ctx context.Context, foodDB domain.FoodDatabase) (domain.StoreFinder, error) {
	switch cfg.Stores.Backend {
	case "gemini":
		return stores.NewGeminiFinder(ctx, cfg.Stores.GeminiAPIKey, cfg.Stores.GeminiModel)
	case "retailers":
		return stores.NewRetailerFinder(foodDB, cfg.OFF.PageSize), nil
	default:
		return stores.NewDirectoryFinder(cfg.Stores.PostalPrefix, timeSeed()), nil
	}
}

func timeSeed() int64 {
	return time.Now().UnixNano()
}
