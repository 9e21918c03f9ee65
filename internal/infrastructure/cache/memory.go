package cache

import (
	"sort"
	"sync"
	"time"

	"github.com/Jps0717/MealMap-sub001/internal/domain"
)

// Default sizing for the result cache
const (
	DefaultTTL      = 30 * time.Minute
	DefaultCapacity = 200

	cleanupInterval = 10 * time.Minute
)

// cacheEntry is one stored result with its bookkeeping timestamps.
// Entries are owned exclusively by the cache; callers get copies.
type cacheEntry struct {
	value          domain.ScoredResult
	createdAt      time.Time
	lastAccessedAt time.Time
}

// MemoryCache is a thread-safe in-memory result cache with TTL expiry
// and capacity-bounded eviction of least-recently-accessed entries.
type MemoryCache struct {
	mu       sync.Mutex
	entries  map[string]*cacheEntry
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// NewMemoryCache creates a result cache. Zero ttl or capacity select
// the defaults.
func NewMemoryCache(ttl time.Duration, capacity int) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &MemoryCache{
		entries:  make(map[string]*cacheEntry),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}

	go c.cleanupLoop()

	return c
}

// Get retrieves a result by key. An expired entry is treated as absent
// and removed; a hit refreshes its last-accessed time.
func (c *MemoryCache) Get(key string) (domain.ScoredResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return domain.ScoredResult{}, false
	}

	now := c.now()
	if now.Sub(entry.createdAt) >= c.ttl {
		delete(c.entries, key)
		return domain.ScoredResult{}, false
	}

	entry.lastAccessedAt = now
	return entry.value, true
}

// Put stores a result. When at capacity and the key is new, the
// least-recently-accessed fifth of the entries is evicted first.
func (c *MemoryCache) Put(key string, value domain.ScoredResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictLocked(c.capacity / 5)
	}

	c.entries[key] = &cacheEntry{
		value:          value,
		createdAt:      now,
		lastAccessedAt: now,
	}
}

// evictLocked removes the n least-recently-accessed entries. Caller
// must hold the lock.
func (c *MemoryCache) evictLocked(n int) {
	if n < 1 {
		n = 1
	}

	type keyAccess struct {
		key      string
		accessed time.Time
	}
	ordered := make([]keyAccess, 0, len(c.entries))
	for key, entry := range c.entries {
		ordered = append(ordered, keyAccess{key, entry.lastAccessedAt})
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].accessed.Before(ordered[j].accessed)
	})

	if n > len(ordered) {
		n = len(ordered)
	}
	for _, ka := range ordered[:n] {
		delete(c.entries, ka.key)
	}
}

// Size returns the current number of entries, expired ones included.
func (c *MemoryCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// PurgeExpired removes all expired entries and returns how many.
func (c *MemoryCache) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, entry := range c.entries {
		if now.Sub(entry.createdAt) >= c.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// cleanupLoop periodically purges expired entries so an idle cache
// does not hold dead data until the next Get.
func (c *MemoryCache) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.PurgeExpired()
	}
}

// PersistedEntry is the flat record shape used when the host persists
// the cache across restarts.
type PersistedEntry struct {
	Key       string              `json:"key"`
	Value     domain.ScoredResult `json:"value"`
	CreatedAt time.Time           `json:"createdAt"`
}

// Snapshot returns a copy of all unexpired entries.
func (c *MemoryCache) Snapshot() []PersistedEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	out := make([]PersistedEntry, 0, len(c.entries))
	for key, entry := range c.entries {
		if now.Sub(entry.createdAt) >= c.ttl {
			continue
		}
		out = append(out, PersistedEntry{Key: key, Value: entry.value, CreatedAt: entry.createdAt})
	}
	return out
}

// Restore reloads persisted entries, dropping any already older than
// the TTL rather than resurrecting them.
func (c *MemoryCache) Restore(persisted []PersistedEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for _, p := range persisted {
		if now.Sub(p.CreatedAt) >= c.ttl {
			continue
		}
		c.entries[p.Key] = &cacheEntry{
			value:          p.Value,
			createdAt:      p.CreatedAt,
			lastAccessedAt: now,
		}
	}
}
