package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eatelligence/scanner/internal/domain"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <barcode>",
	Short: "Look up a product by barcode and print its health report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}

		report, err := application.scannerService.Lookup(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				fmt.Println("Product not found in database")
				return nil
			}
			return err
		}

		printReport(report)
		return nil
	},
}
