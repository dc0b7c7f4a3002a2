package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eatelligence/scanner/internal/domain"
)

var storesTimeout time.Duration

var storesCmd = &cobra.Command{
	Use:   "stores <product-name>",
	Short: "Suggest stores that may carry healthier alternatives",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}

		productName := args[0]
		for _, arg := range args[1:] {
			productName += " " + arg
		}

		result, err := application.storeService.Suggest(cmd.Context(), productName, storesTimeout)
		if err != nil {
			if errors.Is(err, domain.ErrStoreLookupTimeout) {
				fmt.Println("The store search is taking too long. Please try again.")
				return nil
			}
			fmt.Println("An error occurred while searching for stores.")
			return nil
		}

		printStores(result)
		return nil
	},
}

func init() {
	storesCmd.Flags().DurationVar(&storesTimeout, "timeout", 0, "store lookup deadline (default from config, 10s)")
}
