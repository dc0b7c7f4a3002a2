package cli

import (
	"fmt"
	"strings"

	"github.com/eatelligence/scanner/internal/domain"
	"github.com/eatelligence/scanner/internal/usecase"
)

// printReport renders a scan report in the terminal, US nutrition facts
// panel style.
func printReport(report *domain.ScanReport) {
	product := report.Product

	fmt.Printf("\nProduct: %s\n", product.Name)
	fmt.Printf("Brand: %s\n", product.Brands)
	fmt.Printf("Health Score: %s/100\n", usecase.FormatNumber(report.HealthScore))

	fmt.Println("\nNUTRITION FACTS")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Serving Size: %s\n", product.ServingSize)
	fmt.Println(strings.Repeat("-", 40))
	for _, fact := range usecase.NutritionFacts(product.Nutriments) {
		fmt.Printf("%s: %s%s\n", fact.Label, fact.Value, fact.Unit)
	}

	if len(report.Alternatives) == 0 {
		return
	}

	fmt.Println("\nHEALTHIER ALTERNATIVES")
	fmt.Println(strings.Repeat("=", 40))
	for i, alt := range report.Alternatives {
		fmt.Printf("%d. %s by %s (Score: %s/100)\n", i+1, alt.Name, alt.Brands, usecase.FormatNumber(alt.HealthScore))
		fmt.Printf("   Serving Size: %s\n", alt.ServingSize)
		if alt.Stores != "" {
			fmt.Printf("   Available at: %s\n", alt.Stores)
		}
	}
}

// printStores renders store suggestions in the terminal.
func printStores(result *domain.StoreLookupResult) {
	if len(result.Stores) == 0 {
		fmt.Println("No store recommendations available at the moment. Try again later.")
		return
	}

	for _, store := range result.Stores {
		fmt.Printf("\n%s\n", store.Name)
		if store.Description != "" {
			fmt.Printf("  Why this store: %s\n", store.Description)
		}
		if store.HealthyAlternatives != "" {
			fmt.Printf("  Healthy alternatives: %s\n", store.HealthyAlternatives)
		}
		if store.SpecialFeatures != "" {
			fmt.Printf("  Special features: %s\n", store.SpecialFeatures)
		}
		if store.Address != "" {
			fmt.Printf("  Location: %s\n", store.Address)
		}
	}
}
