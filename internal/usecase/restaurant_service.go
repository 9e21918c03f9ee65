package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/Jps0717/MealMap-sub001/internal/domain"
	"github.com/Jps0717/MealMap-sub001/internal/infrastructure/geocache"
)

// RestaurantServiceConfig holds configuration for restaurant discovery
type RestaurantServiceConfig struct {
	RadiusMiles            float64
	StaleAfter             time.Duration // refresh trigger age, a fraction of the cache TTL
	MaxBackgroundRefreshes int64
	PreloadLimit           int // menu items preloaded per successful refresh
	RefreshTimeout         time.Duration
	EnableDebugLogging     bool
}

// Restaurant service defaults
const (
	defaultRadiusMiles    = 5.0
	defaultStaleAfter     = 15 * time.Minute
	defaultMaxRefreshes   = 3
	defaultPreloadLimit   = 5
	defaultRefreshTimeout = 30 * time.Second
)

// RestaurantService serves location-scoped restaurant lists with
// stale-while-revalidate semantics: cached lists are returned
// immediately, and lists past the staleness threshold trigger a
// deduplicated, concurrency-bounded background refresh. A lazy
// nutrition preload piggybacks on successful refreshes.
type RestaurantService struct {
	geo      *geocache.GeoCache
	provider domain.RestaurantProvider
	resolver *ResolverService
	config   RestaurantServiceConfig

	sem *semaphore.Weighted

	mu       sync.Mutex
	inFlight map[string]struct{}
	// preloaded keys are never evicted; the menu-item vocabulary behind
	// this service is small and bounded by the catalog.
	preloaded     map[string]struct{}
	lastRefreshed time.Time
	active        int
}

// NewRestaurantService creates the service. resolver may be nil to
// disable nutrition preloading.
func NewRestaurantService(geo *geocache.GeoCache, provider domain.RestaurantProvider, resolver *ResolverService, config RestaurantServiceConfig) *RestaurantService {
	if config.RadiusMiles <= 0 {
		config.RadiusMiles = defaultRadiusMiles
	}
	if config.StaleAfter <= 0 {
		config.StaleAfter = defaultStaleAfter
	}
	if config.MaxBackgroundRefreshes <= 0 {
		config.MaxBackgroundRefreshes = defaultMaxRefreshes
	}
	if config.PreloadLimit <= 0 {
		config.PreloadLimit = defaultPreloadLimit
	}
	if config.RefreshTimeout <= 0 {
		config.RefreshTimeout = defaultRefreshTimeout
	}

	return &RestaurantService{
		geo:       geo,
		provider:  provider,
		resolver:  resolver,
		config:    config,
		sem:       semaphore.NewWeighted(config.MaxBackgroundRefreshes),
		inFlight:  make(map[string]struct{}),
		preloaded: make(map[string]struct{}),
	}
}

// GetRestaurants returns restaurants near the point plus a status
// string for diagnostics. Cache hits return immediately; hits past the
// staleness threshold additionally trigger a background refresh. A
// miss fetches in the foreground and stores the result.
func (s *RestaurantService) GetRestaurants(ctx context.Context, center domain.Point) ([]domain.Restaurant, string, error) {
	if list, createdAt, ok := s.geo.Lookup(center); ok {
		status := "cache"
		if time.Since(createdAt) > s.config.StaleAfter {
			if s.TriggerRefresh(center) {
				status = "cache-refreshing"
			} else {
				status = "cache-stale"
			}
		}
		return list, status, nil
	}

	list, err := s.provider.FetchNearby(ctx, center, s.config.RadiusMiles)
	if err != nil {
		return nil, "error", err
	}

	s.geo.Store(list, center, s.config.RadiusMiles)
	s.markRefreshed()
	return list, "fetched", nil
}

// TriggerRefresh starts a background refresh for the region unless one
// is already in flight for the same key or the concurrency cap is
// reached. Requests beyond the cap are skipped, not queued; the next
// poll retries. Returns whether a task was started.
func (s *RestaurantService) TriggerRefresh(center domain.Point) bool {
	key := domain.RegionKey(center)

	s.mu.Lock()
	if _, busy := s.inFlight[key]; busy {
		s.mu.Unlock()
		return false
	}
	if !s.sem.TryAcquire(1) {
		s.mu.Unlock()
		return false
	}
	s.inFlight[key] = struct{}{}
	s.active++
	s.mu.Unlock()

	go s.refresh(key, center)
	return true
}

// refresh runs one background fetch-and-store. Already-running tasks
// are never cancelled; a superseding write simply wins by timestamp.
func (s *RestaurantService) refresh(key string, center domain.Point) {
	defer func() {
		s.sem.Release(1)
		s.mu.Lock()
		delete(s.inFlight, key)
		s.active--
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.RefreshTimeout)
	defer cancel()

	list, err := s.provider.FetchNearby(ctx, center, s.config.RadiusMiles)
	if err != nil {
		log.Printf("[GEO] background refresh failed for %s: %v", key, err)
		return
	}

	s.geo.Store(list, center, s.config.RadiusMiles)
	s.markRefreshed()

	if s.config.EnableDebugLogging {
		log.Printf("[GEO] refreshed %s: %d restaurants", key, len(list))
	}

	s.preloadNutrition(ctx, list)
}

// preloadNutrition resolves a bounded number of menu-item names from
// freshly refreshed restaurants so later foreground lookups hit the
// result cache. Deduplicated by name across refreshes; rate limiting
// is the resolver's own per-source spacing.
func (s *RestaurantService) preloadNutrition(ctx context.Context, restaurants []domain.Restaurant) {
	if s.resolver == nil {
		return
	}

	loaded := 0
	for _, r := range restaurants {
		for _, item := range r.MenuItems {
			if loaded >= s.config.PreloadLimit {
				return
			}
			key := NormalizeCacheKey(item)

			s.mu.Lock()
			_, seen := s.preloaded[key]
			if !seen {
				s.preloaded[key] = struct{}{}
			}
			s.mu.Unlock()
			if seen {
				continue
			}

			s.resolver.Resolve(ctx, item)
			loaded++
		}
	}
}

// markRefreshed advances the last-refreshed timestamp, last write wins.
func (s *RestaurantService) markRefreshed() {
	s.mu.Lock()
	if now := time.Now(); now.After(s.lastRefreshed) {
		s.lastRefreshed = now
	}
	s.mu.Unlock()
}

// LastRefreshed returns the time of the most recent successful fetch.
func (s *RestaurantService) LastRefreshed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRefreshed
}

// ActiveRefreshes returns the number of in-flight background tasks.
func (s *RestaurantService) ActiveRefreshes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
