package geocache

import (
	"sort"
	"sync"
	"time"

	"github.com/Jps0717/MealMap-sub001/internal/domain"
)

// Default sizing for the geographic cache
const (
	DefaultTTL      = 30 * time.Minute
	DefaultCapacity = 50
)

// cachedRegion holds one fetched restaurant list and its bounding box.
// The cache exclusively owns regions; lookups return copies.
type cachedRegion struct {
	bounds         domain.GeographicBounds
	restaurants    []domain.Restaurant
	createdAt      time.Time
	lastAccessedAt time.Time
}

// GeoCache maps geographic query regions to previously fetched
// restaurant lists. Lookups are containment tests over unexpired
// bounding boxes, so nearby queries reuse overlapping regions.
type GeoCache struct {
	mu       sync.Mutex
	regions  map[string]*cachedRegion
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// New creates a geo cache. Zero ttl or capacity select the defaults.
func New(ttl time.Duration, capacity int) *GeoCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &GeoCache{
		regions:  make(map[string]*cachedRegion),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}
}

// Lookup returns the restaurant list of the first unexpired region
// whose bounds contain the point, along with the region's creation
// time. Expired regions encountered during the scan are removed.
// Catalog sizes are small, so a linear scan is fine.
func (g *GeoCache) Lookup(p domain.Point) ([]domain.Restaurant, time.Time, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for key, region := range g.regions {
		if now.Sub(region.createdAt) >= g.ttl {
			delete(g.regions, key)
			continue
		}
		if region.bounds.Contains(p) {
			region.lastAccessedAt = now
			out := make([]domain.Restaurant, len(region.restaurants))
			copy(out, region.restaurants)
			return out, region.createdAt, true
		}
	}
	return nil, time.Time{}, false
}

// Store caches a restaurant list for the bounding box derived from the
// center and radius. A refresh of an existing key replaces the region
// in place; at capacity the least-recently-accessed fifth is evicted.
func (g *GeoCache) Store(restaurants []domain.Restaurant, center domain.Point, radiusMiles float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := domain.RegionKey(center)
	now := g.now()

	if _, exists := g.regions[key]; !exists && len(g.regions) >= g.capacity {
		g.evictLocked(g.capacity / 5)
	}

	stored := make([]domain.Restaurant, len(restaurants))
	copy(stored, restaurants)

	g.regions[key] = &cachedRegion{
		bounds:         domain.BoundsFromCenter(center, radiusMiles),
		restaurants:    stored,
		createdAt:      now,
		lastAccessedAt: now,
	}
}

// evictLocked removes the n least-recently-accessed regions. Caller
// must hold the lock.
func (g *GeoCache) evictLocked(n int) {
	if n < 1 {
		n = 1
	}

	type keyAccess struct {
		key      string
		accessed time.Time
	}
	ordered := make([]keyAccess, 0, len(g.regions))
	for key, region := range g.regions {
		ordered = append(ordered, keyAccess{key, region.lastAccessedAt})
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].accessed.Before(ordered[j].accessed)
	})

	if n > len(ordered) {
		n = len(ordered)
	}
	for _, ka := range ordered[:n] {
		delete(g.regions, ka.key)
	}
}

// Size returns the current number of cached regions.
func (g *GeoCache) Size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.regions)
}
