package app

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	coredashboard "github.com/example/printadmin/internal/core/dashboard"
	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/primary"
)

// DashboardServiceImpl implements the DashboardService interface.
type DashboardServiceImpl struct {
	campuses *Store[models.Campus]
	shops    *Store[models.Shop]
	maxAge   time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewDashboardService creates a new DashboardService reading from the given stores.
func NewDashboardService(
	campuses *Store[models.Campus],
	shops *Store[models.Shop],
	maxAge time.Duration,
	logger *zap.Logger,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		campuses: campuses,
		shops:    shops,
		maxAge:   maxAge,
		logger:   logger.Named("dashboard"),
		now:      time.Now,
	}
}

// Refresh fetches both collections concurrently. The first failure cancels
// the other fetch and is returned.
func (s *DashboardServiceImpl) Refresh(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.campuses.FetchAll(gctx) })
	g.Go(func() error { return s.shops.FetchAll(gctx) })
	return g.Wait()
}

// GetDashboard computes aggregates from the stores, refreshing them first
// when asked to.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, refresh bool) *primary.Result[primary.Dashboard] {
	if refresh {
		if err := s.Refresh(ctx); err != nil {
			s.logger.Debug("refresh failed", zap.Error(err))
			return primary.Fail[primary.Dashboard](classifyFailure(err, opFetch, entityKind{name: "dashboard", plural: "dashboard data"}, nil))
		}
	}

	stats := coredashboard.Compute(s.campuses.Items(), s.shops.Items())
	metrics := coredashboard.ComputeMetrics(stats)

	fetchedAt := s.campuses.FetchedAt()
	if shopsAt := s.shops.FetchedAt(); shopsAt.Before(fetchedAt) {
		fetchedAt = shopsAt
	}
	now := s.now()

	d := primary.Dashboard{
		TotalCampuses:    stats.TotalCampuses,
		TotalShops:       stats.TotalShops,
		ActiveShops:      stats.ActiveShops,
		InactiveShops:    stats.InactiveShops,
		ActivePercentage: metrics.ActiveShopsPercentage,
		ShopsPerCampus:   metrics.ShopsPerCampus,
		ExecutionModes:   toModeCounts(coredashboard.ExecutionModeStats(stats)),
		PaymentModes:     toModeCounts(coredashboard.PaymentModeStats(stats)),
		Summary:          coredashboard.Summary(stats),
		FetchedAt:        fetchedAt,
		Stale:            s.campuses.Stale(now, s.maxAge) || s.shops.Stale(now, s.maxAge),
	}
	return primary.Ok(&d, "Dashboard loaded")
}

func toModeCounts(stats []coredashboard.ModeStat) []primary.ModeCount {
	out := make([]primary.ModeCount, len(stats))
	for i, st := range stats {
		out[i] = primary.ModeCount{Mode: st.Mode, Label: st.Label, Count: st.Count}
	}
	return out
}

// Ensure DashboardServiceImpl implements the interface
var _ primary.DashboardService = (*DashboardServiceImpl)(nil)
