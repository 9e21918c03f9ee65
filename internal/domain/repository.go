package domain

import (
	"context"
	"time"
)

// SourceCandidate is one row returned by a source search: a candidate
// name, the source's structured id for it, and whatever nutrient data
// came back with the search hit.
type SourceCandidate struct {
	Name      string
	ID        string
	Nutrition NutritionEstimate
}

// Source is the narrow contract every external catalog satisfies,
// whether backed by a remote JSON API, a restaurant-code map, or a
// static table. Each source carries its own confidence cap and minimum
// call spacing; the fallback chain owns a rate limiter per source.
type Source interface {
	ID() string
	ConfidenceCap() float64
	MinInterval() time.Duration
	Search(ctx context.Context, query string) ([]SourceCandidate, error)
}

// ResultCache is the key-value TTL cache for resolved names. Expired
// entries are treated as absent; Get refreshes last-access on hit.
type ResultCache interface {
	Get(key string) (ScoredResult, bool)
	Put(key string, value ScoredResult)
}

// RestaurantProvider fetches restaurants near a point. Implemented by
// the places client; the geo cache and refresh coordinator sit in
// front of it.
type RestaurantProvider interface {
	FetchNearby(ctx context.Context, center Point, radiusMiles float64) ([]Restaurant, error)
}
