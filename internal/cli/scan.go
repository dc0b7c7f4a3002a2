package cli

import (
	"errors"
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/cobra"

	"github.com/eatelligence/scanner/internal/domain"
	"github.com/eatelligence/scanner/internal/scan"
)

var scanRaw bool

var scanCmd = &cobra.Command{
	Use:   "scan <image-file>",
	Short: "Decode a barcode from a still image and print its health report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}

		scanner := application.barcodeScanner
		if scanRaw {
			scanner = scan.NewScanner(scan.NewZXingDecoder(), scan.ModeRaw)
		}

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open image: %w", err)
		}
		defer file.Close()

		frame, _, err := image.Decode(file)
		if err != nil {
			// Malformed image input means "not found", not a crash
			fmt.Println("No barcode detected. Please try again.")
			return nil
		}

		payload, ok := scanner.DetectBarcode(frame)
		if !ok {
			fmt.Println("No barcode detected. Please try again.")
			return nil
		}

		fmt.Printf("Barcode: %s\n", payload)

		report, err := application.scannerService.Lookup(cmd.Context(), payload)
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

func init() {
	scanCmd.Flags().BoolVar(&scanRaw, "raw", false, "decode the frame directly, skipping preprocessing variants")
}
