// Package analytics derives the read-only performance snapshot from state.
// Snapshots are recomputed wholesale after mutating actions, never patched
// incrementally, so cached and true derived values cannot drift.
package analytics

import (
	"math"
	"sort"

	"github.com/ecatuogno1/glassvision/internal/domain"
)

const (
	// TopContentCount limits the performance ranking length.
	TopContentCount = 6
	// BaselineDays is the length of the seeded daily-active-user series.
	BaselineDays = 7
)

// Compute derives a fresh analytics snapshot. It is pure and deterministic:
// calling it twice with the same state yields identical results.
func Compute(state domain.State) domain.AnalyticsSnapshot {
	performance := contentPerformance(state)

	if len(state.Analytics.DailyActiveUsers) == 0 {
		return domain.AnalyticsSnapshot{
			ContentPerformance: performance,
			DailyActiveUsers:   Baseline(),
			FormConversionRate: 0,
		}
	}

	dau := make([]int, len(state.Analytics.DailyActiveUsers))
	copy(dau, state.Analytics.DailyActiveUsers)

	return domain.AnalyticsSnapshot{
		ContentPerformance: performance,
		DailyActiveUsers:   dau,
		FormConversionRate: conversionRate(state.Forms),
	}
}

// Baseline returns the fixed synthetic daily-active-user series used when no
// series has been seeded yet.
func Baseline() []int {
	series := make([]int, BaselineDays)
	for i := range series {
		series[i] = 48 + i*4
	}
	return series
}

// contentPerformance flattens every bucket, ranks by views descending, and
// keeps the top entries. Buckets are walked in canonical order and the sort
// is stable, so ties resolve deterministically.
func contentPerformance(state domain.State) []domain.ContentPerformance {
	rows := []domain.ContentPerformance{}
	for _, entity := range domain.ContentEntities {
		for _, entry := range state.Content[entity] {
			rows = append(rows, domain.ContentPerformance{
				ID:    entry.ID,
				Title: entry.Title,
				Type:  entity,
				Views: entry.Metrics.Views,
				Trend: classifyTrend(entry.Metrics),
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Views > rows[j].Views
	})
	if len(rows) > TopContentCount {
		rows = rows[:TopContentCount]
	}
	return rows
}

// classifyTrend marks an entry "up" when engagements exceed 20% of views.
// Zero views always classify "down" since the ratio condition fails.
func classifyTrend(metrics domain.ContentMetrics) domain.Trend {
	if metrics.Engagements*5 > metrics.Views {
		return domain.TrendUp
	}
	return domain.TrendDown
}

// conversionRate is round(resolved/total*100), with 0 when no submissions
// exist anywhere.
func conversionRate(forms []domain.FormDefinition) int {
	total := 0
	resolved := 0
	for _, form := range forms {
		total += len(form.Submissions)
		for _, submission := range form.Submissions {
			if submission.Status == domain.SubmissionResolved {
				resolved++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(resolved) / float64(total) * 100))
}
