package stores

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatelligence/scanner/internal/domain"
)

func TestDirectoryFinder(t *testing.T) {
	ctx := context.Background()

	t.Run("returns at most five stores", func(t *testing.T) {
		finder := NewDirectoryFinder("", 1)

		stores, err := finder.FindStores(ctx, "instant noodles")
		require.NoError(t, err)
		assert.LessOrEqual(t, len(stores), 5)
		assert.NotEmpty(t, stores)
	})

	t.Run("nationwide chains always qualify", func(t *testing.T) {
		finder := NewDirectoryFinder("99999", 1)

		stores, err := finder.FindStores(ctx, "instant noodles")
		require.NoError(t, err)
		for _, store := range stores {
			assert.NotEmpty(t, store.Name)
		}
	})

	t.Run("regional entries match postal prefix", func(t *testing.T) {
		finder := NewDirectoryFinder("98101", 7)

		stores, err := finder.FindStores(ctx, "instant noodles")
		require.NoError(t, err)

		names := make(map[string]bool)
		for _, store := range stores {
			names[store.Name] = true
		}
		// Seattle entry is eligible, Los Angeles entry is not
		assert.False(t, names["Erewhon Market"])
	})

	t.Run("is safe for concurrent lookups", func(t *testing.T) {
		finder := NewDirectoryFinder("", 1)

		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					stores, err := finder.FindStores(ctx, "instant noodles")
					assert.NoError(t, err)
					assert.NotEmpty(t, stores)
				}
			}()
		}
		wg.Wait()
	})

	t.Run("honors a cancelled context", func(t *testing.T) {
		finder := NewDirectoryFinder("", 1)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := finder.FindStores(cancelled, "instant noodles")
		assert.Error(t, err)
	})
}

// fakeFoodDB serves canned search results for the retailer backend
type fakeFoodDB struct {
	products []domain.Product
	err      error
}

func (f *fakeFoodDB) GetProduct(ctx context.Context, code string) (*domain.Product, error) {
	return nil, domain.ErrProductNotFound
}

func (f *fakeFoodDB) SearchByCategory(ctx context.Context, category, countryTag string, pageSize int) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeFoodDB) SearchByName(ctx context.Context, terms string, pageSize int) ([]domain.Product, error) {
	return f.products, f.err
}

func TestRetailerFinder(t *testing.T) {
	ctx := context.Background()

	t.Run("harvests and dedupes retailer fields", func(t *testing.T) {
		foodDB := &fakeFoodDB{
			products: []domain.Product{
				{Name: "Crunchy Granola Bar", Stores: "Walmart, Target"},
				{Name: "Chewy Granola Bar", Stores: "walmart", PurchasePlaces: "Kroger"},
			},
		}
		finder := NewRetailerFinder(foodDB, 50)

		stores, err := finder.FindStores(ctx, "granola bars")
		require.NoError(t, err)
		require.Len(t, stores, 3)
		assert.Equal(t, "Walmart", stores[0].Name)
		assert.Equal(t, "Target", stores[1].Name)
		assert.Equal(t, "Kroger", stores[2].Name)
	})

	t.Run("caps results at five", func(t *testing.T) {
		foodDB := &fakeFoodDB{
			products: []domain.Product{
				{Name: "A", Stores: "S1, S2, S3, S4, S5, S6, S7"},
			},
		}
		finder := NewRetailerFinder(foodDB, 50)

		stores, err := finder.FindStores(ctx, "anything")
		require.NoError(t, err)
		assert.Len(t, stores, 5)
	})

	t.Run("propagates search failures", func(t *testing.T) {
		foodDB := &fakeFoodDB{err: errors.New("search down")}
		finder := NewRetailerFinder(foodDB, 50)

		_, err := finder.FindStores(ctx, "anything")
		assert.Error(t, err)
	})
}

func TestParseStoreJSON(t *testing.T) {
	t.Run("extracts a fenced JSON array", func(t *testing.T) {
		text := "Here are some stores:\n```json\n[{\"name\": \"Whole Foods Market\", \"description\": \"organic selection\", \"healthy_alternatives\": \"granola\", \"special_features\": \"bulk foods\"}]\n```\nHope this helps!"

		stores, err := parseStoreJSON(text)
		require.NoError(t, err)
		require.Len(t, stores, 1)
		assert.Equal(t, "Whole Foods Market", stores[0].Name)
		assert.Equal(t, "organic selection", stores[0].Description)
		assert.Equal(t, "granola", stores[0].HealthyAlternatives)
		assert.Equal(t, "bulk foods", stores[0].SpecialFeatures)
	})

	t.Run("drops entries without a name", func(t *testing.T) {
		stores, err := parseStoreJSON(`[{"name": "Sprouts Farmers Market"}, {"description": "nameless"}]`)
		require.NoError(t, err)
		assert.Len(t, stores, 1)
	})

	t.Run("rejects output without an array", func(t *testing.T) {
		_, err := parseStoreJSON("I could not find any stores, sorry.")
		assert.Error(t, err)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := parseStoreJSON(`[{"name": "Broken`)
		assert.Error(t, err)
	})
}
