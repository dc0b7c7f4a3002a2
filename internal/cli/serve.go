package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	httpDelivery "github.com/eatelligence/scanner/internal/delivery/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}

		log.Printf("Starting Eatelligence Scanner v1.0.0")
		log.Printf("Environment: %s", cfg.Server.Environment)
		log.Printf("Market: %s", cfg.OFF.CountryTag)
		log.Printf("Store backend: %s", cfg.Stores.Backend)

		handler := httpDelivery.NewHandler(
			application.scannerService,
			application.storeService,
			application.barcodeScanner,
		)
		router := httpDelivery.SetupRouter(cfg, handler)

		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Printf("Server listening on %s", addr)
		return router.Run(addr)
	},
}
