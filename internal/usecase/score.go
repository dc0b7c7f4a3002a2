package usecase

import "github.com/eatelligence/scanner/internal/domain"

// Nutrient weights for the health score heuristic. Each nutrient contributes
// weight × min(value, 10); the cap keeps a single extreme value (megadose
// sodium, say) from dominating the score.
var negativeFactors = map[string]float64{
	domain.NutrientSugars:       -5,
	domain.NutrientSaturatedFat: -5,
	domain.NutrientSodium:       -4,
	domain.NutrientFat:          -3,
}

var positiveFactors = map[string]float64{
	domain.NutrientProtein:   4,
	domain.NutrientFiber:     4,
	domain.NutrientVitaminD:  2,
	domain.NutrientCalcium:   2,
	domain.NutrientIron:      2,
	domain.NutrientPotassium: 2,
}

// nutrientComparison is one axis of the majority-improvement test.
// wantLower is true for nutrients where less is better.
type nutrientComparison struct {
	key       string
	wantLower bool
}

var healthierComparisons = []nutrientComparison{
	{domain.NutrientSugars, true},
	{domain.NutrientFat, true},
	{domain.NutrientSaturatedFat, true},
	{domain.NutrientSodium, true},
	{domain.NutrientProtein, false},
	{domain.NutrientFiber, false},
}

// HealthScore computes the bounded [1,100] health score for a nutriment
// profile. Pure function of the values: baseline 50, weighted capped
// contributions, clamp. Absent or non-numeric nutrients contribute zero.
func HealthScore(nutriments map[string]any) float64 {
	score := 50.0

	for key, weight := range negativeFactors {
		score += weight * cappedValue(nutriments, key)
	}
	for key, weight := range positiveFactors {
		score += weight * cappedValue(nutriments, key)
	}

	if score < 1.0 {
		return 1.0
	}
	if score > 100.0 {
		return 100.0
	}
	return score
}

// cappedValue returns min(value, 10), or 0 when the nutrient is absent or
// non-numeric.
func cappedValue(nutriments map[string]any, key string) float64 {
	value, ok := domain.NutrientValue(nutriments, key)
	if !ok {
		return 0
	}
	if value > 10 {
		return 10
	}
	return value
}

// IsHealthierOption runs the majority-improvement test: of the six comparable
// nutrient axes defined on both profiles, the alternative must win at least
// 60%. This guards against a candidate that beats the score on unrelated
// nutrients while losing on most comparable axes.
func IsHealthierOption(current, alternative map[string]any) bool {
	betterCount := 0
	totalComparisons := 0

	for _, cmp := range healthierComparisons {
		currentVal, currentOK := domain.NutrientValue(current, cmp.key)
		altVal, altOK := domain.NutrientValue(alternative, cmp.key)
		if !currentOK || !altOK {
			continue
		}

		if cmp.wantLower && altVal < currentVal {
			betterCount++
		} else if !cmp.wantLower && altVal > currentVal {
			betterCount++
		}
		totalComparisons++
	}

	return totalComparisons > 0 && float64(betterCount)/float64(totalComparisons) >= 0.6
}
