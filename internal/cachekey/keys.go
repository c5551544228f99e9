// Package cachekey derives cache keys for the dashboard's resource
// families. Builders are pure and deterministic: the same resource and
// selector parameters always produce the identical key, and distinct
// parameters never collide.
package cachekey

import (
	"fmt"
	"sort"
	"strings"
)

// Key prefixes shared with the invalidation rules. A prefix covers every
// page/filter variant of a resource family.
const (
	JobListPrefix             = "jobs_list_"
	JobDetailPrefix           = "jobs_detail_"
	JobAggregatePrefix        = "jobs_agg_"
	ComparisonListPrefix      = "comparisons_list_"
	ComparisonDetailPrefix    = "comparisons_detail_"
	ComparisonAggregatePrefix = "comparisons_agg_"
	ResumePrefix              = "resumes_"
	AnalyticsPrefix           = "analytics_"
)

// Filters holds the query filters of a list view. Serialization sorts the
// field names so two logically equal filter sets built in different order
// still map to the same key.
type Filters map[string]string

func (f Filters) encode() string {
	if len(f) == 0 {
		return "all"
	}
	names := make([]string, 0, len(f))
	for name, value := range f {
		if value == "" {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return "all"
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+f[name])
	}
	return strings.Join(parts, "&")
}

// JobList keys a paginated, filtered job listing.
func JobList(page int, filters Filters) string {
	return fmt.Sprintf("%sp%d_%s", JobListPrefix, page, filters.encode())
}

// JobDetail keys a single job view.
func JobDetail(id string) string {
	return JobDetailPrefix + id
}

// JobStats keys the jobs statistics aggregate.
func JobStats() string {
	return JobAggregatePrefix + "stats"
}

// JobCompanies keys the distinct-companies aggregate.
func JobCompanies() string {
	return JobAggregatePrefix + "companies"
}

// JobPopularSkills keys the popular-skills aggregate.
func JobPopularSkills(limit int) string {
	return fmt.Sprintf("%spopular_skills_%d", JobAggregatePrefix, limit)
}

// ComparisonList keys a paginated, filtered comparison listing.
func ComparisonList(page int, filters Filters) string {
	return fmt.Sprintf("%sp%d_%s", ComparisonListPrefix, page, filters.encode())
}

// ComparisonDetail keys a single comparison view.
func ComparisonDetail(id string) string {
	return ComparisonDetailPrefix + id
}

// ComparisonAnalytics keys the comparison analytics aggregate.
func ComparisonAnalytics() string {
	return ComparisonAggregatePrefix + "analytics"
}

// ResumeList keys a paginated resume listing.
func ResumeList(page int) string {
	return fmt.Sprintf("%slist_p%d", ResumePrefix, page)
}

// ResumeDetail keys a single parsed resume.
func ResumeDetail(id string) string {
	return ResumePrefix + "detail_" + id
}

// AnalyticsOverview keys the overview metrics for a trailing day window.
func AnalyticsOverview(days int) string {
	return fmt.Sprintf("%soverview_%d", AnalyticsPrefix, days)
}

// AnalyticsDashboard keys the complete dashboard payload for a trailing
// day window, e.g. "analytics_dashboard_30".
func AnalyticsDashboard(days int) string {
	return fmt.Sprintf("%sdashboard_%d", AnalyticsPrefix, days)
}

// HiringTrends keys the monthly hiring trend series.
func HiringTrends(months int) string {
	return fmt.Sprintf("%strends_%d", AnalyticsPrefix, months)
}

// ScoreDistribution keys the ATS score distribution chart data.
func ScoreDistribution() string {
	return AnalyticsPrefix + "score_distribution"
}

// SystemHealth keys the backend health/system info snapshot.
func SystemHealth() string {
	return "system_health"
}
