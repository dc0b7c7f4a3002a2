package stores

import (
	"context"
	"strings"

	"github.com/eatelligence/scanner/internal/domain"
)

// RetailerFinder harvests the stores and purchase_places fields of Open Food
// Facts products matching the product name. These fields are crowd-sourced
// comma-separated retailer lists, so results are deduplicated case-insensitively.
type RetailerFinder struct {
	foodDB   domain.FoodDatabase
	pageSize int
}

// NewRetailerFinder creates a store finder backed by the food database
func NewRetailerFinder(foodDB domain.FoodDatabase, pageSize int) *RetailerFinder {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 50
	}
	return &RetailerFinder{
		foodDB:   foodDB,
		pageSize: pageSize,
	}
}

// FindStores searches products by name and collects where they are sold.
func (f *RetailerFinder) FindStores(ctx context.Context, productName string) ([]domain.Store, error) {
	products, err := f.foodDB.SearchByName(ctx, productName, f.pageSize)
	if err != nil {
		return nil, err
	}

	var stores []domain.Store
	seen := make(map[string]bool)

	collect := func(field, description string) {
		for _, name := range strings.Split(field, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			stores = append(stores, domain.Store{
				Name:        name,
				Description: description,
			})
		}
	}

	for i := range products {
		collect(products[i].Stores, "Carries "+products[i].Name)
		collect(products[i].PurchasePlaces, "Reported purchase place for "+products[i].Name)
		if len(stores) >= 5 {
			break
		}
	}

	if len(stores) > 5 {
		stores = stores[:5]
	}
	return stores, nil
}
