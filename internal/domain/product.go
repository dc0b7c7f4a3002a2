package domain

// Product is a food product as fetched from Open Food Facts, keyed by its
// barcode code. Products are read-only once fetched; nutriment values stay in
// the raw per-100g mapping because the upstream data mixes numbers, numeric
// strings, and nulls.
type Product struct {
	Code           string         `json:"code"`
	Name           string         `json:"productName"`
	Brands         string         `json:"brands"`
	ServingSize    string         `json:"servingSize"`
	Quantity       string         `json:"quantity,omitempty"`
	ImageURL       string         `json:"imageUrl,omitempty"`
	NutritionGrade string         `json:"nutritionGrade,omitempty"`
	Categories     []string       `json:"categories"`
	Countries      []string       `json:"countries"`
	Stores         string         `json:"stores,omitempty"`
	PurchasePlaces string         `json:"purchasePlaces,omitempty"`
	Nutriments     map[string]any `json:"nutriments"`
}

// MainCategory returns the first non-empty category tag, or "unknown".
// Used to derive the search category for alternative discovery.
func (p *Product) MainCategory() string {
	for _, cat := range p.Categories {
		if cat != "" {
			return cat
		}
	}
	return "unknown"
}

// AvailableIn reports whether the product carries the given country tag
// (exact match, e.g. "en:united-states").
func (p *Product) AvailableIn(countryTag string) bool {
	for _, c := range p.Countries {
		if c == countryTag {
			return true
		}
	}
	return false
}

// Alternative is a healthier candidate for a scanned product. It carries no
// identity beyond its name, which doubles as the dedup key.
type Alternative struct {
	Name        string         `json:"name"`
	Brands      string         `json:"brands"`
	ServingSize string         `json:"servingSize"`
	HealthScore float64        `json:"healthScore"`
	Stores      string         `json:"stores,omitempty"`
	Nutriments  map[string]any `json:"nutriments"`
}

// ScanReport is the full result of one barcode lookup: the product, its
// score, and any healthier alternatives found in the same market. It replaces
// ambient session state with explicit request/response data.
type ScanReport struct {
	Product      *Product      `json:"product"`
	HealthScore  float64       `json:"healthScore"`
	Alternatives []Alternative `json:"alternatives"`
	Source       string        `json:"source"` // "openfoodfacts" or "cache"
}
