package primary

import (
	"context"
	"time"
)

// DashboardService defines the primary port for the dashboard.
type DashboardService interface {
	// GetDashboard computes aggregates from the stores. With refresh set, both
	// collections are fetched from the backend first.
	GetDashboard(ctx context.Context, refresh bool) *Result[Dashboard]
}

// Dashboard is the aggregate view shown by `printadmin dashboard`.
type Dashboard struct {
	TotalCampuses    int
	TotalShops       int
	ActiveShops      int
	InactiveShops    int
	ActivePercentage int
	ShopsPerCampus   float64
	ExecutionModes   []ModeCount
	PaymentModes     []ModeCount
	Summary          string
	FetchedAt        time.Time // oldest fetch time of the two collections
	Stale            bool
}

// ModeCount is one labelled row of a per-mode breakdown.
type ModeCount struct {
	Mode  string
	Label string
	Count int
}
