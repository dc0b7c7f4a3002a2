package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/eatelligence/scanner/internal/domain"
)

// StoreService runs store suggestions under an explicit deadline so an
// interactive caller is never left waiting on a slow backend.
type StoreService struct {
	finder         domain.StoreFinder
	defaultTimeout time.Duration
}

// NewStoreService creates a store service around any StoreFinder backend
func NewStoreService(finder domain.StoreFinder, defaultTimeout time.Duration) *StoreService {
	if defaultTimeout <= 0 {
		defaultTimeout = 10 * time.Second
	}
	return &StoreService{
		finder:         finder,
		defaultTimeout: defaultTimeout,
	}
}

// Suggest looks up stores for the named product with a bounded deadline.
// Deadline expiry is a distinct outcome (TimedOut=true, ErrStoreLookupTimeout)
// so callers can word it differently from a generic failure. A failed call is
// reported once; there are no retries.
func (s *StoreService) Suggest(ctx context.Context, productName string, deadline time.Duration) (*domain.StoreLookupResult, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, domain.ErrInvalidRequest
	}

	if deadline <= 0 {
		deadline = s.defaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	stores, err := s.finder.FindStores(ctx, productName)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			log.Printf("[STORES] Lookup for %q exceeded %s deadline", productName, deadline)
			return &domain.StoreLookupResult{Stores: []domain.Store{}, TimedOut: true}, domain.ErrStoreLookupTimeout
		}
		log.Printf("[STORES] Lookup for %q failed: %v", productName, err)
		return &domain.StoreLookupResult{Stores: []domain.Store{}}, fmt.Errorf("%w: %v", domain.ErrStoreLookupFailure, err)
	}

	if stores == nil {
		stores = []domain.Store{}
	}
	return &domain.StoreLookupResult{Stores: stores}, nil
}
