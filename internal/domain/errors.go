package domain

import "errors"

var (
	// ErrProductNotFound is returned when a barcode is unknown to Open Food Facts
	ErrProductNotFound = errors.New("product not found in Open Food Facts")

	// ErrOFFAPIFailure is returned when an Open Food Facts request fails
	ErrOFFAPIFailure = errors.New("Open Food Facts API request failed")

	// ErrStoreLookupTimeout is returned when a store search exceeds its deadline
	ErrStoreLookupTimeout = errors.New("store lookup timed out")

	// ErrStoreLookupFailure is returned when a store backend fails for any other reason
	ErrStoreLookupFailure = errors.New("store lookup failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
