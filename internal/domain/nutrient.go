package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Canonical Open Food Facts nutriment keys (per 100g of product).
const (
	NutrientEnergyKcal   = "energy-kcal_100g"
	NutrientFat          = "fat_100g"
	NutrientSaturatedFat = "saturated-fat_100g"
	NutrientTransFat     = "trans-fat_100g"
	NutrientCholesterol  = "cholesterol_100g"
	NutrientSodium       = "sodium_100g"
	NutrientCarbs        = "carbohydrates_100g"
	NutrientFiber        = "fiber_100g"
	NutrientSugars       = "sugars_100g"
	NutrientProtein      = "proteins_100g"
	NutrientVitaminD     = "vitamin-d_100g"
	NutrientCalcium      = "calcium_100g"
	NutrientIron         = "iron_100g"
	NutrientPotassium    = "potassium_100g"
)

// NutrientValue coerces a raw nutriment map entry to a float64.
// Open Food Facts serves values as JSON numbers, numeric strings, or null
// depending on the product; absent and non-numeric both report ok=false,
// never an error.
func NutrientValue(nutriments map[string]any, key string) (float64, bool) {
	v, ok := nutriments[key]
	if !ok || v == nil {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case int:
		return float64(x), true
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return f, true
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// NutritionFact is one presentation row of a US-style nutrition facts panel.
// Value is pre-formatted to two decimal places.
type NutritionFact struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}
