// Package dashboard computes the aggregate counts shown on the admin dashboard.
// All functions are pure and operate on already-fetched collections.
package dashboard

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/example/printadmin/internal/core/shop"
	"github.com/example/printadmin/internal/models"
)

// Stats holds the dashboard aggregates.
type Stats struct {
	TotalCampuses      int
	TotalShops         int
	ActiveShops        int
	InactiveShops      int
	ExecutionModeCount map[models.ExecutionMode]int
	PaymentModeCount   map[models.PaymentMode]int
}

// Metrics holds values derived from Stats.
type Metrics struct {
	TotalItems            int
	ActiveShopsPercentage int
	ShopsPerCampus        float64
}

// ModeStat is one labelled row of a per-mode breakdown.
type ModeStat struct {
	Mode  string
	Label string
	Count int
}

// Trend describes the direction of a change between two readings.
type Trend struct {
	Symbol string
	Text   string
}

// Compute builds Stats from the cached collections.
func Compute(campuses []models.Campus, shops []models.Shop) Stats {
	stats := Stats{
		TotalCampuses:      len(campuses),
		TotalShops:         len(shops),
		ExecutionModeCount: map[models.ExecutionMode]int{},
		PaymentModeCount:   map[models.PaymentMode]int{},
	}

	for _, s := range shops {
		if s.IsActive {
			stats.ActiveShops++
		} else {
			stats.InactiveShops++
		}
		stats.ExecutionModeCount[s.ExecutionMode]++
		stats.PaymentModeCount[s.PaymentMode]++
	}

	return stats
}

// ComputeMetrics derives totals and ratios. Ratios are zero when the
// denominator is zero.
func ComputeMetrics(s Stats) Metrics {
	m := Metrics{TotalItems: s.TotalCampuses + s.TotalShops}
	if s.TotalShops > 0 {
		m.ActiveShopsPercentage = Percentage(s.ActiveShops, s.TotalShops)
	}
	if s.TotalCampuses > 0 {
		m.ShopsPerCampus = float64(s.TotalShops) / float64(s.TotalCampuses)
	}
	return m
}

// Percentage returns part/total rounded to the nearest whole percent.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

// ExecutionModeStats returns labelled counts sorted by count descending,
// then by mode name.
func ExecutionModeStats(s Stats) []ModeStat {
	out := make([]ModeStat, 0, len(s.ExecutionModeCount))
	for mode, count := range s.ExecutionModeCount {
		out = append(out, ModeStat{Mode: string(mode), Label: shop.ExecutionModeLabel(mode), Count: count})
	}
	sortModeStats(out)
	return out
}

// PaymentModeStats returns labelled counts sorted by count descending,
// then by mode name.
func PaymentModeStats(s Stats) []ModeStat {
	out := make([]ModeStat, 0, len(s.PaymentModeCount))
	for mode, count := range s.PaymentModeCount {
		out = append(out, ModeStat{Mode: string(mode), Label: shop.PaymentModeLabel(mode), Count: count})
	}
	sortModeStats(out)
	return out
}

func sortModeStats(stats []ModeStat) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Mode < stats[j].Mode
	})
}

// Summary renders "Total: N campuses, M shops (K active)".
func Summary(s Stats) string {
	return fmt.Sprintf("Total: %d campuses, %d shops (%d active)", s.TotalCampuses, s.TotalShops, s.ActiveShops)
}

// FormatLargeNumber abbreviates thousands and millions (1.2K, 3.4M).
func FormatLargeNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	}
	return fmt.Sprintf("%d", n)
}

// GrowthPercentage returns the percent change from previous to current.
// From zero, any growth counts as 100%.
func GrowthPercentage(current, previous int) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(current-previous) * 100 / float64(previous)))
}

// TrendIndicator classifies the change between two readings.
func TrendIndicator(current, previous int) Trend {
	switch {
	case current > previous:
		return Trend{Symbol: "📈", Text: "up"}
	case current < previous:
		return Trend{Symbol: "📉", Text: "down"}
	}
	return Trend{Symbol: "➡️", Text: "stable"}
}

// IsStale reports whether data fetched at fetchedAt is older than maxAge at now.
// Data that was never fetched is always stale.
func IsStale(fetchedAt, now time.Time, maxAge time.Duration) bool {
	if fetchedAt.IsZero() {
		return true
	}
	return now.Sub(fetchedAt) > maxAge
}
