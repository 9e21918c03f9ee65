package domain

import "errors"

var (
	// ErrInvalidInput is returned when a raw name is empty or unusable
	ErrInvalidInput = errors.New("invalid input: empty or unusable name")

	// ErrSourceDeclined is returned when a source produced no acceptable candidate.
	// Not a failure: the fallback chain moves on to the next source.
	ErrSourceDeclined = errors.New("source returned no acceptable candidate")

	// ErrSourceUnavailable is returned on transient network or parse failures
	ErrSourceUnavailable = errors.New("source temporarily unavailable")

	// ErrRateLimited is returned when a source explicitly signals throttling
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrNoRestaurants is returned when a location query yields no results
	ErrNoRestaurants = errors.New("no restaurants found for location")
)
