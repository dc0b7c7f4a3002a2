package usecase

import (
	"fmt"

	"github.com/eatelligence/scanner/internal/domain"
)

// factRow fixes the label, display unit, and panel position of one nutriment.
type factRow struct {
	key   string
	label string
	unit  string
}

// nutritionFactsOrder is the standard US nutrition facts panel order.
// Indented labels are sub-entries of the line above them.
var nutritionFactsOrder = []factRow{
	{domain.NutrientEnergyKcal, "Calories", "kcal"},
	{domain.NutrientFat, "Total Fat", "g"},
	{domain.NutrientSaturatedFat, "  Saturated Fat", "g"},
	{domain.NutrientTransFat, "  Trans Fat", "g"},
	{domain.NutrientCholesterol, "Cholesterol", "mg"},
	{domain.NutrientSodium, "Sodium", "mg"},
	{domain.NutrientCarbs, "Total Carbohydrates", "g"},
	{domain.NutrientFiber, "  Dietary Fiber", "g"},
	{domain.NutrientSugars, "  Sugars", "g"},
	{domain.NutrientProtein, "Protein", "g"},
	{domain.NutrientVitaminD, "Vitamin D", "µg"},
	{domain.NutrientCalcium, "Calcium", "mg"},
	{domain.NutrientIron, "Iron", "mg"},
	{domain.NutrientPotassium, "Potassium", "mg"},
}

// FormatNumber formats a numeric value to two decimal places.
func FormatNumber(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// NutritionFacts renders a nutriment profile as ordered presentation rows.
// Per-100g values recorded in grams are converted to milligrams for rows
// displayed in mg; absent, non-numeric, and zero values are skipped.
func NutritionFacts(nutriments map[string]any) []domain.NutritionFact {
	facts := make([]domain.NutritionFact, 0, len(nutritionFactsOrder))

	for _, row := range nutritionFactsOrder {
		value, ok := domain.NutrientValue(nutriments, row.key)
		if !ok || value == 0 {
			continue
		}

		if row.unit == "mg" {
			value *= 1000
		}

		facts = append(facts, domain.NutritionFact{
			Label: row.label,
			Value: FormatNumber(value),
			Unit:  row.unit,
		})
	}

	return facts
}
