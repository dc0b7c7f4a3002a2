package openfoodfacts

import "github.com/eatelligence/scanner/internal/domain"

// productResponse is the envelope of the v0 product endpoint.
// status is 1 when the barcode is known.
type productResponse struct {
	Status  int        `json:"status"`
	Code    string     `json:"code"`
	Product rawProduct `json:"product"`
}

// searchResponse is the envelope of the cgi/search.pl endpoint.
type searchResponse struct {
	Count    int          `json:"count"`
	Products []rawProduct `json:"products"`
}

// rawProduct is the subset of an Open Food Facts product record this
// application reads. Nutriments stay untyped: the API mixes JSON numbers,
// numeric strings, and nulls between products.
type rawProduct struct {
	Code           string         `json:"code"`
	ProductName    string         `json:"product_name"`
	GenericName    string         `json:"generic_name"`
	Brands         string         `json:"brands"`
	ServingSize    string         `json:"serving_size"`
	Quantity       string         `json:"quantity"`
	ImageURL       string         `json:"image_url"`
	NutritionGrade string         `json:"nutrition_grades"`
	CategoriesTags []string       `json:"categories_tags"`
	CountriesTags  []string       `json:"countries_tags"`
	Stores         string         `json:"stores"`
	PurchasePlaces string         `json:"purchase_places"`
	Nutriments     map[string]any `json:"nutriments"`
}

// mapProduct converts a raw Open Food Facts record to the domain model.
func mapProduct(raw rawProduct) *domain.Product {
	name := raw.ProductName
	if name == "" {
		name = raw.GenericName
	}
	if name == "" {
		name = "Unknown"
	}

	brands := raw.Brands
	if brands == "" {
		brands = "Unknown Brand"
	}

	servingSize := raw.ServingSize
	if servingSize == "" {
		servingSize = "Not specified"
	}

	nutriments := raw.Nutriments
	if nutriments == nil {
		nutriments = map[string]any{}
	}

	return &domain.Product{
		Code:           raw.Code,
		Name:           name,
		Brands:         brands,
		ServingSize:    servingSize,
		Quantity:       raw.Quantity,
		ImageURL:       raw.ImageURL,
		NutritionGrade: raw.NutritionGrade,
		Categories:     raw.CategoriesTags,
		Countries:      raw.CountriesTags,
		Stores:         raw.Stores,
		PurchasePlaces: raw.PurchasePlaces,
		Nutriments:     nutriments,
	}
}
