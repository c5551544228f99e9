package cachekey

import "testing"

func TestKeys_Deterministic(t *testing.T) {
	if AnalyticsDashboard(30) != AnalyticsDashboard(30) {
		t.Fatalf("same parameters must yield the same key")
	}
	if AnalyticsDashboard(30) == AnalyticsDashboard(60) {
		t.Fatalf("different day windows must yield distinct keys")
	}
	if got := AnalyticsDashboard(30); got != "analytics_dashboard_30" {
		t.Fatalf("unexpected dashboard key: %q", got)
	}
}

func TestKeys_ListsDistinguishPageAndFilters(t *testing.T) {
	base := JobList(1, Filters{"status": "active"})

	if JobList(2, Filters{"status": "active"}) == base {
		t.Fatalf("page must be part of the key")
	}
	if JobList(1, Filters{"status": "closed"}) == base {
		t.Fatalf("filter values must be part of the key")
	}
	if JobList(1, nil) == base {
		t.Fatalf("filtered and unfiltered lists must not collide")
	}
}

func TestKeys_FilterOrderIndependent(t *testing.T) {
	a := JobList(1, Filters{"status": "active", "company": "acme"})
	b := JobList(1, Filters{"company": "acme", "status": "active"})
	if a != b {
		t.Fatalf("logically equal filters must collide: %q vs %q", a, b)
	}
}

func TestKeys_EmptyFilterValuesIgnored(t *testing.T) {
	a := JobList(1, Filters{"status": "", "search": ""})
	b := JobList(1, nil)
	if a != b {
		t.Fatalf("blank filters must equal no filters: %q vs %q", a, b)
	}
}

func TestKeys_DetailAndAggregates(t *testing.T) {
	if JobDetail("42") == JobDetail("43") {
		t.Fatalf("distinct ids must yield distinct keys")
	}
	if ComparisonDetail("42") == JobDetail("42") {
		t.Fatalf("resource families must not collide")
	}
	if JobPopularSkills(10) == JobPopularSkills(20) {
		t.Fatalf("aggregate parameters must be part of the key")
	}
	if AnalyticsOverview(30) == AnalyticsDashboard(30) {
		t.Fatalf("overview and dashboard keys must differ")
	}
}
