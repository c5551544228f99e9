package cache

import (
	"time"

	"recruitdash-cache-api/internal/storage"
)

// Instance names used across stats reporting and invalidation rules.
const (
	InstanceAPI         = "api"
	InstanceJobs        = "jobs"
	InstanceComparisons = "comparisons"
	InstanceSystem      = "system"
)

// GroupConfig holds the per-instance store settings.
type GroupConfig struct {
	API         Config
	Jobs        Config
	Comparisons Config
	System      Config
}

// DefaultGroupConfig mirrors the dashboard's tuning: short TTLs for hot
// list data, a long TTL for rarely changing system info.
func DefaultGroupConfig() GroupConfig {
	return GroupConfig{
		API:         Config{DefaultTTL: 5 * time.Minute, MaxSize: 100, Prefix: "cache_api_"},
		Jobs:        Config{DefaultTTL: 10 * time.Minute, MaxSize: 50, Prefix: "cache_jobs_"},
		Comparisons: Config{DefaultTTL: 5 * time.Minute, MaxSize: 50, Prefix: "cache_cmp_"},
		System:      Config{DefaultTTL: 30 * time.Minute, MaxSize: 20, Prefix: "cache_sys_"},
	}
}

// Group bundles the named cache instances. Each store has its own entries,
// config, and stats; clearing one never touches another. The group is
// constructed once at startup and injected wherever caching is needed,
// instead of living as module-level singletons.
type Group struct {
	API         *Store
	Jobs        *Store
	Comparisons *Store
	System      *Store
}

// NewGroup constructs the four named instances over a shared durable
// medium. The medium may be nil when persistence is disabled.
func NewGroup(cfg GroupConfig, medium storage.Medium) *Group {
	return &Group{
		API:         New(InstanceAPI, cfg.API, medium),
		Jobs:        New(InstanceJobs, cfg.Jobs, medium),
		Comparisons: New(InstanceComparisons, cfg.Comparisons, medium),
		System:      New(InstanceSystem, cfg.System, medium),
	}
}

// All returns the instances keyed by name, for stats reporting.
func (g *Group) All() map[string]*Store {
	return map[string]*Store{
		InstanceAPI:         g.API,
		InstanceJobs:        g.Jobs,
		InstanceComparisons: g.Comparisons,
		InstanceSystem:      g.System,
	}
}

// ClearAll empties every instance.
func (g *Group) ClearAll() {
	for _, s := range g.All() {
		s.Clear()
	}
}

// Close stops every instance's background cleanup.
func (g *Group) Close() error {
	for _, s := range g.All() {
		_ = s.Close()
	}
	return nil
}
