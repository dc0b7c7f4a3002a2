package openfoodfacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapProduct(t *testing.T) {
	t.Run("maps a complete record", func(t *testing.T) {
		raw := rawProduct{
			Code:           "0001",
			ProductName:    "Oat Squares",
			Brands:         "TestBrand",
			ServingSize:    "40g",
			NutritionGrade: "a",
			CategoriesTags: []string{"en:breakfast-cereals"},
			CountriesTags:  []string{"en:united-states"},
			Stores:         "Walmart",
			Nutriments:     map[string]any{"fiber_100g": 8.0},
		}

		product := mapProduct(raw)
		assert.Equal(t, "0001", product.Code)
		assert.Equal(t, "Oat Squares", product.Name)
		assert.Equal(t, "TestBrand", product.Brands)
		assert.Equal(t, "40g", product.ServingSize)
		assert.Equal(t, "a", product.NutritionGrade)
		assert.Equal(t, "Walmart", product.Stores)
	})

	t.Run("fills placeholder values for sparse records", func(t *testing.T) {
		product := mapProduct(rawProduct{Code: "0002"})
		assert.Equal(t, "Unknown", product.Name)
		assert.Equal(t, "Unknown Brand", product.Brands)
		assert.Equal(t, "Not specified", product.ServingSize)
		assert.NotNil(t, product.Nutriments)
		assert.Equal(t, "unknown", product.MainCategory())
	})

	t.Run("falls back to generic name", func(t *testing.T) {
		product := mapProduct(rawProduct{Code: "0003", GenericName: "Wheat Crackers"})
		assert.Equal(t, "Wheat Crackers", product.Name)
	})

	t.Run("skips empty category tags", func(t *testing.T) {
		product := mapProduct(rawProduct{
			Code:           "0004",
			ProductName:    "Mystery Snack",
			CategoriesTags: []string{"", "en:snacks"},
		})
		assert.Equal(t, "en:snacks", product.MainCategory())
	})
}
