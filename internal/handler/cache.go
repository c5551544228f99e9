package handler

import (
	"net/http"
	"runtime"
	"time"

	"recruitdash-cache-api/internal/cache"
	"recruitdash-cache-api/internal/invalidation"
	"recruitdash-cache-api/pkg/response"
)

// CacheHandler exposes cache statistics and manual invalidation.
type CacheHandler struct {
	caches      *cache.Group
	invalidator *invalidation.Coordinator
	storageType string
	startTime   time.Time
}

// NewCacheHandler creates a new cache handler.
func NewCacheHandler(
	caches *cache.Group,
	invalidator *invalidation.Coordinator,
	storageType string,
) *CacheHandler {
	return &CacheHandler{
		caches:      caches,
		invalidator: invalidator,
		storageType: storageType,
		startTime:   time.Now(),
	}
}

// GetStats handles GET /api/v1/cache/stats
func (h *CacheHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := make(map[string]interface{})

	// System info
	stats["uptime_seconds"] = int64(time.Since(h.startTime).Seconds())
	stats["server_time"] = time.Now().Format(time.RFC3339)
	stats["storage_type"] = h.storageType

	// Per-instance cache stats
	instances := make(map[string]cache.Stats)
	for name, store := range h.caches.All() {
		instances[name] = store.Stats()
	}
	stats["instances"] = instances

	// Runtime info
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	stats["runtime"] = map[string]interface{}{
		"go_version": runtime.Version(),
		"alloc_mb":   float64(memStats.Alloc) / 1024 / 1024,
		"goroutines": runtime.NumGoroutine(),
	}

	response.OK(w, stats)
}

// InvalidateAll handles POST /api/v1/cache/invalidate - the manual
// "refresh everything" action.
func (h *CacheHandler) InvalidateAll(w http.ResponseWriter, r *http.Request) {
	h.invalidator.InvalidateAll()
	response.OK(w, map[string]string{"status": "invalidated"})
}
