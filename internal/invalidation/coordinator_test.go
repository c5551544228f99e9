package invalidation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recruitdash-cache-api/internal/cache"
	"recruitdash-cache-api/internal/cachekey"
)

func newTestGroup() *cache.Group {
	return cache.NewGroup(cache.DefaultGroupConfig(), nil)
}

func TestCoordinator_OnJobCreated(t *testing.T) {
	g := newTestGroup()
	c := NewCoordinator(g)

	g.Jobs.Set(cachekey.JobList(1, cachekey.Filters{"status": "active"}), "list")
	g.Jobs.Set(cachekey.JobStats(), "stats")
	g.API.Set(cachekey.AnalyticsDashboard(30), "dashboard")
	g.Comparisons.Set(cachekey.ComparisonList(1, nil), "unrelated")

	c.OnJobCreated()

	assert.False(t, g.Jobs.Has(cachekey.JobList(1, cachekey.Filters{"status": "active"})))
	assert.False(t, g.Jobs.Has(cachekey.JobStats()))
	assert.False(t, g.API.Has(cachekey.AnalyticsDashboard(30)))
	assert.True(t, g.Comparisons.Has(cachekey.ComparisonList(1, nil)),
		"unrelated instance must be untouched")
}

func TestCoordinator_OnJobUpdated(t *testing.T) {
	g := newTestGroup()
	c := NewCoordinator(g)

	g.Jobs.Set(cachekey.JobDetail("42"), "detail-42")
	g.Jobs.Set(cachekey.JobDetail("43"), "detail-43")
	g.Jobs.Set(cachekey.JobList(1, nil), "list")

	c.OnJobUpdated("42")

	assert.False(t, g.Jobs.Has(cachekey.JobDetail("42")), "updated detail must be cleared")
	assert.True(t, g.Jobs.Has(cachekey.JobDetail("43")), "other details must survive")
	assert.False(t, g.Jobs.Has(cachekey.JobList(1, nil)), "all list pages must be cleared")
}

func TestCoordinator_OnJobDeleted(t *testing.T) {
	g := newTestGroup()
	c := NewCoordinator(g)

	g.Jobs.Set(cachekey.JobDetail("7"), "detail")
	g.API.Set(cachekey.AnalyticsOverview(30), "overview")

	c.OnJobDeleted("7")

	assert.False(t, g.Jobs.Has(cachekey.JobDetail("7")))
	assert.False(t, g.API.Has(cachekey.AnalyticsOverview(30)))
}

func TestCoordinator_ComparisonHooks(t *testing.T) {
	g := newTestGroup()
	c := NewCoordinator(g)

	g.Comparisons.Set(cachekey.ComparisonList(2, cachekey.Filters{"job_id": "9"}), "list")
	g.Comparisons.Set(cachekey.ComparisonDetail("abc"), "detail")
	g.Comparisons.Set(cachekey.ComparisonAnalytics(), "agg")
	g.Jobs.Set(cachekey.JobList(1, nil), "jobs-list")

	c.OnComparisonDeleted("abc")

	assert.False(t, g.Comparisons.Has(cachekey.ComparisonList(2, cachekey.Filters{"job_id": "9"})))
	assert.False(t, g.Comparisons.Has(cachekey.ComparisonDetail("abc")))
	assert.False(t, g.Comparisons.Has(cachekey.ComparisonAnalytics()))
	assert.True(t, g.Jobs.Has(cachekey.JobList(1, nil)), "jobs instance must be untouched")
}

func TestCoordinator_OnResumeProcessed(t *testing.T) {
	g := newTestGroup()
	c := NewCoordinator(g)

	g.API.Set(cachekey.ResumeList(1), "resumes")
	g.API.Set(cachekey.ResumeDetail("r1"), "resume")
	g.API.Set(cachekey.AnalyticsDashboard(30), "dashboard")
	g.System.Set(cachekey.SystemHealth(), "health")

	c.OnResumeProcessed()

	assert.False(t, g.API.Has(cachekey.ResumeList(1)))
	assert.False(t, g.API.Has(cachekey.ResumeDetail("r1")))
	assert.False(t, g.API.Has(cachekey.AnalyticsDashboard(30)))
	assert.True(t, g.System.Has(cachekey.SystemHealth()),
		"system info must survive the coarse resume hook")
}

func TestCoordinator_InvalidateAll(t *testing.T) {
	g := newTestGroup()
	c := NewCoordinator(g)

	g.API.Set("a", 1)
	g.Jobs.Set("b", 2)
	g.Comparisons.Set("c", 3)
	g.System.Set("d", 4)

	c.InvalidateAll()

	for name, store := range g.All() {
		assert.Equalf(t, 0, store.Len(), "instance %q must be empty", name)
	}
}
