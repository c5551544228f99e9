package cache

import (
	"testing"
	"time"

	"recruitdash-cache-api/internal/storage"
)

func TestGroup_InstancesAreIndependent(t *testing.T) {
	g := NewGroup(DefaultGroupConfig(), nil)

	g.Jobs.Set("jobs_list_p1_all", "jobs-data")
	g.Comparisons.Set("comparisons_list_p1_all", "cmp-data")

	g.Jobs.Clear()

	if g.Jobs.Len() != 0 {
		t.Fatalf("expected jobs instance to be empty")
	}
	if !g.Comparisons.Has("comparisons_list_p1_all") {
		t.Fatalf("clearing one instance must not evict another's keys")
	}
}

func TestGroup_StatsAreIndependent(t *testing.T) {
	g := NewGroup(DefaultGroupConfig(), nil)

	g.Jobs.Get("missing")

	if g.Jobs.Stats().Misses != 1 {
		t.Fatalf("expected jobs miss to be counted")
	}
	if g.API.Stats().Misses != 0 {
		t.Fatalf("expected api counters to be untouched")
	}
}

func TestGroup_DistinctPersistencePrefixes(t *testing.T) {
	medium := storage.NewMemoryMedium()
	cfg := DefaultGroupConfig()
	for _, c := range []*Config{&cfg.API, &cfg.Jobs, &cfg.Comparisons, &cfg.System} {
		c.Persist = true
	}
	g := NewGroup(cfg, medium)

	g.Jobs.Set("k", 1)
	g.System.Set("k", 2)

	g.Jobs.Clear()

	if _, err := medium.GetItem("cache_sys_k"); err != nil {
		t.Fatalf("expected system record to survive jobs clear, got %v", err)
	}
	if _, err := medium.GetItem("cache_jobs_k"); err != storage.ErrNotFound {
		t.Fatalf("expected jobs record to be removed, got %v", err)
	}
}

func TestGroup_AllAndClearAll(t *testing.T) {
	g := NewGroup(DefaultGroupConfig(), nil)
	defer g.Close()

	instances := g.All()
	for _, name := range []string{InstanceAPI, InstanceJobs, InstanceComparisons, InstanceSystem} {
		if instances[name] == nil {
			t.Fatalf("expected instance %q to exist", name)
		}
		instances[name].Set("k", "v", time.Minute)
	}

	g.ClearAll()
	for name, store := range instances {
		if store.Len() != 0 {
			t.Fatalf("expected %q to be empty after ClearAll", name)
		}
	}
}
