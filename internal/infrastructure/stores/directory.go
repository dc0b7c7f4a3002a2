package stores

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"github.com/eatelligence/scanner/internal/domain"
)

// DirectoryFinder serves suggestions from a static store directory keyed by
// postal-code prefix. It is a placeholder backend: useful for demos and as a
// fallback when no API key is configured, not a real store database.
type DirectoryFinder struct {
	postalPrefix string

	// mu guards rng, which is shared across concurrent HTTP requests
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDirectoryFinder creates a directory-backed store finder. postalPrefix
// narrows suggestions to one region; empty means nationwide chains only.
func NewDirectoryFinder(postalPrefix string, seed int64) *DirectoryFinder {
	return &DirectoryFinder{
		postalPrefix: postalPrefix,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// directoryEntry is one row of the static directory.
type directoryEntry struct {
	store        domain.Store
	postalPrefix string // "" = nationwide
}

var directory = []directoryEntry{
	{domain.Store{Name: "Whole Foods Market", Description: "Large organic selection across every category", Address: "Nationwide chain"}, ""},
	{domain.Store{Name: "Trader Joe's", Description: "Private-label products with simple ingredient lists", Address: "Nationwide chain"}, ""},
	{domain.Store{Name: "Sprouts Farmers Market", Description: "Fresh produce and bulk foods focus", Address: "Nationwide chain"}, ""},
	{domain.Store{Name: "Natural Grocers", Description: "Strict ingredient standards, nutrition education", Address: "Nationwide chain"}, ""},
	{domain.Store{Name: "Fresh Thyme Market", Description: "Midwest natural foods grocer", Address: "Midwest region"}, "4"},
	{domain.Store{Name: "Erewhon Market", Description: "Organic and regenerative sourcing", Address: "Los Angeles area"}, "90"},
	{domain.Store{Name: "PCC Community Markets", Description: "Co-op with local organic producers", Address: "Seattle area"}, "98"},
	{domain.Store{Name: "MOM's Organic Market", Description: "Mid-Atlantic organic grocer", Address: "Mid-Atlantic region"}, "2"},
}

// FindStores returns up to five directory entries matching the configured
// region, in randomized order so repeated lookups vary.
func (f *DirectoryFinder) FindStores(ctx context.Context, productName string) ([]domain.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matched []domain.Store
	for _, entry := range directory {
		if entry.postalPrefix == "" || strings.HasPrefix(f.postalPrefix, entry.postalPrefix) {
			matched = append(matched, entry.store)
		}
	}

	f.mu.Lock()
	f.rng.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	f.mu.Unlock()

	if len(matched) > 5 {
		matched = matched[:5]
	}
	return matched, nil
}
