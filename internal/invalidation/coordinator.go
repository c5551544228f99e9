// Package invalidation centralizes the cache invalidation contracts of the
// dashboard's mutating operations. Every write path has exactly one named
// hook here, so the blast radius of a mutation is declared in one rules
// table instead of being scattered across call sites.
package invalidation

import (
	"log"

	"recruitdash-cache-api/internal/cache"
	"recruitdash-cache-api/internal/cachekey"
)

// Op names a mutation whose invalidation scope is declared in the rules table.
type Op string

const (
	OpJobCreated        Op = "job_created"
	OpJobMutated        Op = "job_mutated" // update and delete share a scope
	OpComparisonCreated Op = "comparison_created"
	OpComparisonMutated Op = "comparison_mutated"
	OpResumeProcessed   Op = "resume_processed"
)

// target pairs a named cache instance with a key prefix. An empty prefix
// clears the whole instance.
type target struct {
	instance string
	prefix   string
}

// rules declares, per operation, which key families go stale. Key
// placement: the jobs instance holds jobs_* keys, the comparisons instance
// holds comparisons_* keys, and the api instance holds resumes_* and
// analytics_* keys. Adding a new mutating endpoint's contract is a data
// change here, not new imperative code.
var rules = map[Op][]target{
	OpJobCreated: {
		{cache.InstanceJobs, cachekey.JobListPrefix},
		{cache.InstanceJobs, cachekey.JobAggregatePrefix},
		{cache.InstanceAPI, cachekey.AnalyticsPrefix},
	},
	OpJobMutated: {
		{cache.InstanceJobs, cachekey.JobListPrefix},
		{cache.InstanceJobs, cachekey.JobAggregatePrefix},
		{cache.InstanceAPI, cachekey.AnalyticsPrefix},
	},
	OpComparisonCreated: {
		{cache.InstanceComparisons, cachekey.ComparisonListPrefix},
		{cache.InstanceComparisons, cachekey.ComparisonAggregatePrefix},
		{cache.InstanceAPI, cachekey.AnalyticsPrefix},
	},
	OpComparisonMutated: {
		{cache.InstanceComparisons, cachekey.ComparisonListPrefix},
		{cache.InstanceComparisons, cachekey.ComparisonAggregatePrefix},
		{cache.InstanceAPI, cachekey.AnalyticsPrefix},
	},
	OpResumeProcessed: {
		{cache.InstanceAPI, cachekey.ResumePrefix},
		{cache.InstanceAPI, cachekey.AnalyticsPrefix},
	},
}

// Coordinator applies the declared invalidation rules against a cache group.
type Coordinator struct {
	caches *cache.Group
}

// NewCoordinator creates a coordinator over the given cache group.
func NewCoordinator(caches *cache.Group) *Coordinator {
	return &Coordinator{caches: caches}
}

// OnJobCreated clears job listings, job aggregates, and the analytics
// views that summarize them.
func (c *Coordinator) OnJobCreated() {
	c.apply(OpJobCreated)
}

// OnJobUpdated clears the job's detail view plus everything OnJobCreated
// clears, since list ordering and derived fields may have changed.
func (c *Coordinator) OnJobUpdated(id string) {
	c.caches.Jobs.Delete(cachekey.JobDetail(id))
	c.apply(OpJobMutated)
}

// OnJobDeleted has the same scope as OnJobUpdated.
func (c *Coordinator) OnJobDeleted(id string) {
	c.caches.Jobs.Delete(cachekey.JobDetail(id))
	c.apply(OpJobMutated)
}

// OnComparisonCreated clears comparison listings, comparison aggregates,
// and dependent analytics views.
func (c *Coordinator) OnComparisonCreated() {
	c.apply(OpComparisonCreated)
}

// OnComparisonUpdated clears the comparison's detail view plus everything
// OnComparisonCreated clears.
func (c *Coordinator) OnComparisonUpdated(id string) {
	c.caches.Comparisons.Delete(cachekey.ComparisonDetail(id))
	c.apply(OpComparisonMutated)
}

// OnComparisonDeleted has the same scope as OnComparisonUpdated.
func (c *Coordinator) OnComparisonDeleted(id string) {
	c.caches.Comparisons.Delete(cachekey.ComparisonDetail(id))
	c.apply(OpComparisonMutated)
}

// OnResumeProcessed is the coarse hook for upload/parse flows where the
// precise blast radius is hard to enumerate: it clears the resume and
// analytics families broadly.
func (c *Coordinator) OnResumeProcessed() {
	c.apply(OpResumeProcessed)
}

// InvalidateAll clears every named instance unconditionally. Used for the
// manual "refresh everything" action and for recovering from suspected
// cache/data divergence.
func (c *Coordinator) InvalidateAll() {
	c.caches.ClearAll()
	log.Printf("[Invalidation] cleared all cache instances")
}

func (c *Coordinator) apply(op Op) {
	instances := c.caches.All()
	removed := 0
	for _, t := range rules[op] {
		store, ok := instances[t.instance]
		if !ok {
			continue
		}
		if t.prefix == "" {
			store.Clear()
			continue
		}
		removed += store.DeletePrefix(t.prefix)
	}
	log.Printf("[Invalidation] %s: removed %d entries", op, removed)
}
