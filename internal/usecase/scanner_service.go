package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/eatelligence/scanner/internal/domain"
)

// maxAlternatives caps how many healthier candidates a scan reports.
const maxAlternatives = 3

// ScannerServiceConfig holds configuration for the scanner service
type ScannerServiceConfig struct {
	CacheTTL time.Duration
	// CountryTag restricts alternative discovery to one market
	CountryTag string
	// AlternativesThreshold is the score below which alternatives are searched
	AlternativesThreshold float64
	// SearchPageSize caps the candidate pool fetched per search
	SearchPageSize int
}

// ScannerService handles barcode lookup, health scoring, and alternative
// discovery with caching
type ScannerService struct {
	cache                 domain.CacheRepository
	foodDB                domain.FoodDatabase
	cacheTTL              time.Duration
	countryTag            string
	alternativesThreshold float64
	searchPageSize        int
}

// NewScannerService creates a new scanner service with dependencies
func NewScannerService(
	cache domain.CacheRepository,
	foodDB domain.FoodDatabase,
	config ScannerServiceConfig,
) *ScannerService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	countryTag := config.CountryTag
	if countryTag == "" {
		countryTag = "en:united-states"
	}

	threshold := config.AlternativesThreshold
	if threshold <= 0 {
		threshold = 70.0
	}

	pageSize := config.SearchPageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 100
	}

	return &ScannerService{
		cache:                 cache,
		foodDB:                foodDB,
		cacheTTL:              cacheTTL,
		countryTag:            countryTag,
		alternativesThreshold: threshold,
		searchPageSize:        pageSize,
	}
}

// Lookup fetches a product by barcode, scores it, and, when the score falls
// below the alternatives threshold, searches the same market for healthier
// candidates. A failure during alternative discovery never blocks the
// already-fetched product/score path.
func (s *ScannerService) Lookup(ctx context.Context, barcode string) (*domain.ScanReport, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, domain.ErrInvalidRequest
	}

	product, source, err := s.getProduct(ctx, barcode)
	if err != nil {
		return nil, err
	}

	score := HealthScore(product.Nutriments)

	report := &domain.ScanReport{
		Product:      product,
		HealthScore:  score,
		Alternatives: []domain.Alternative{},
		Source:       source,
	}

	if score < s.alternativesThreshold {
		report.Alternatives = s.FindAlternatives(ctx, product, score)
	}

	return report, nil
}

// getProduct resolves a product through the cache-aside path.
func (s *ScannerService) getProduct(ctx context.Context, barcode string) (*domain.Product, string, error) {
	cacheKey := "product:" + barcode

	if value, err := s.cache.Get(ctx, cacheKey); err == nil {
		if product, ok := value.(*domain.Product); ok {
			return product, "cache", nil
		}
	}

	product, err := s.foodDB.GetProduct(ctx, barcode)
	if err != nil {
		return nil, "", err
	}

	if err := s.cache.Set(ctx, cacheKey, product, s.cacheTTL); err != nil {
		log.Printf("[SCAN] Failed to cache product %s: %v", barcode, err)
	}

	return product, "openfoodfacts", nil
}

// FindAlternatives searches the product's main category for candidates that
// are strictly healthier by both score and the majority-improvement test.
// Results are sorted best-first, deduplicated by name, and capped at 3.
// Any search failure yields an empty list, never partial results with an
// error state.
func (s *ScannerService) FindAlternatives(ctx context.Context, product *domain.Product, healthScore float64) []domain.Alternative {
	category := product.MainCategory()

	candidates, err := s.searchCategory(ctx, category)
	if err != nil {
		log.Printf("[SCAN] Alternative search failed for category %q: %v", category, err)
		return []domain.Alternative{}
	}

	var alternatives []domain.Alternative
	for i := range candidates {
		candidate := &candidates[i]

		if candidate.Code == product.Code {
			continue
		}
		if !candidate.AvailableIn(s.countryTag) {
			continue
		}

		altScore := HealthScore(candidate.Nutriments)
		if altScore <= healthScore {
			continue
		}
		if !IsHealthierOption(product.Nutriments, candidate.Nutriments) {
			continue
		}

		alternatives = append(alternatives, domain.Alternative{
			Name:        candidate.Name,
			Brands:      candidate.Brands,
			ServingSize: candidate.ServingSize,
			HealthScore: altScore,
			Stores:      candidate.Stores,
			Nutriments:  candidate.Nutriments,
		})
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].HealthScore > alternatives[j].HealthScore
	})

	// Dedupe by name, first occurrence wins, preserving sort order
	unique := make([]domain.Alternative, 0, maxAlternatives)
	seen := make(map[string]bool)
	for _, alt := range alternatives {
		if seen[alt.Name] {
			continue
		}
		seen[alt.Name] = true
		unique = append(unique, alt)
		if len(unique) >= maxAlternatives {
			break
		}
	}

	return unique
}

// searchCategory resolves a category candidate pool through the cache-aside
// path. Search pages are cached under the category and market tags.
func (s *ScannerService) searchCategory(ctx context.Context, category string) ([]domain.Product, error) {
	cacheKey := fmt.Sprintf("search:%s:%s", category, s.countryTag)

	if value, err := s.cache.Get(ctx, cacheKey); err == nil {
		if products, ok := value.([]domain.Product); ok {
			return products, nil
		}
	}

	products, err := s.foodDB.SearchByCategory(ctx, category, s.countryTag, s.searchPageSize)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, products, s.cacheTTL); err != nil {
		log.Printf("[SCAN] Failed to cache search page for %q: %v", category, err)
	}

	return products, nil
}
