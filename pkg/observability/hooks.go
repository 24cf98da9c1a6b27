// Package observability provides hooks for metrics, tracing, and logging.
//
// Hooks let an embedding program observe dictionary loads, searches and cache
// traffic without this module depending on a metrics backend. Register
// implementations once at startup; library code calls the registered hooks:
//
//	func main() {
//	    observability.SetSearchHooks(&mySearchHooks{})
//	    // ... run application
//	}
//
//	observability.Search().OnSearchStart(ctx, origin, target)
//	// ... search ...
//	observability.Search().OnSearchComplete(ctx, origin, target, stats)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Search Hooks
// =============================================================================

// SearchStats summarizes one completed search.
type SearchStats struct {
	Found    bool
	Steps    int // ladder length minus one, -1 when not found
	Expanded int // words whose neighbors were computed
	Duration time.Duration
	Cached   bool // result came from the cache
}

// SearchHooks receives events from the ladder pipeline.
type SearchHooks interface {
	// OnLoad fires after a dictionary has been read.
	OnLoad(ctx context.Context, source string, words int, duration time.Duration, err error)

	// OnSearchStart fires before a query is answered.
	OnSearchStart(ctx context.Context, origin, target string)

	// OnSearchComplete fires after a query is answered, from search or cache.
	OnSearchComplete(ctx context.Context, origin, target string, stats SearchStats)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnLoad(context.Context, string, int, time.Duration, error)      {}
func (NoopSearchHooks) OnSearchStart(context.Context, string, string)                  {}
func (NoopSearchHooks) OnSearchComplete(context.Context, string, string, SearchStats) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	searchHooks SearchHooks = NoopSearchHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetSearchHooks registers custom search hooks. Nil is ignored.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	searchHooks = NoopSearchHooks{}
	cacheHooks = NoopCacheHooks{}
}
