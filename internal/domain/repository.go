package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// FoodDatabase defines the interface for the Open Food Facts API
type FoodDatabase interface {
	// GetProduct fetches a product by barcode. Unknown codes return
	// ErrProductNotFound.
	GetProduct(ctx context.Context, code string) (*Product, error)

	// SearchByCategory returns products in a category tag restricted to a
	// country tag, sorted by the database's own nutrition grade, capped at
	// pageSize results.
	SearchByCategory(ctx context.Context, category, countryTag string, pageSize int) ([]Product, error)

	// SearchByName runs a free-text search; used by the retailer store
	// backend to harvest store fields from matching products.
	SearchByName(ctx context.Context, terms string, pageSize int) ([]Product, error)
}

// StoreFinder suggests retail stores likely to carry healthier alternatives
// to the named product. Implementations are interchangeable backends; the
// caller bounds the call with a context deadline.
type StoreFinder interface {
	FindStores(ctx context.Context, productName string) ([]Store, error)
}
