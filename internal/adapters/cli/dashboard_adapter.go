package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	coredashboard "github.com/example/printadmin/internal/core/dashboard"
	"github.com/example/printadmin/internal/ports/primary"
)

// DashboardAdapter renders the aggregate dashboard.
type DashboardAdapter struct {
	service primary.DashboardService
	out     io.Writer
	now     func() time.Time
}

// NewDashboardAdapter creates a new DashboardAdapter with the given service.
func NewDashboardAdapter(service primary.DashboardService, out io.Writer) *DashboardAdapter {
	return &DashboardAdapter{service: service, out: out, now: time.Now}
}

// Show prints the dashboard. With refresh unset, cached collections are used
// and a staleness hint is printed when they are old.
func (a *DashboardAdapter) Show(ctx context.Context, refresh bool) error {
	d, err := a.load(ctx, refresh)
	if err != nil {
		return err
	}
	return a.render(d, nil)
}

// Watch re-renders the dashboard every interval until ctx is done. A failed
// refresh is reported and the last-known data is shown instead.
func (a *DashboardAdapter) Watch(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var prev *primary.Dashboard
	for {
		d, err := a.load(ctx, true)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			fmt.Fprintf(a.out, "%s Refresh failed: %v\n", warnMark(), err)
			if d, err = a.load(ctx, false); err != nil {
				return err
			}
		}
		if err := a.render(d, prev); err != nil {
			return err
		}
		prev = d
		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (a *DashboardAdapter) load(ctx context.Context, refresh bool) (*primary.Dashboard, error) {
	result := a.service.GetDashboard(ctx, refresh)
	if !result.Success {
		return nil, failure(result)
	}
	return result.Data, nil
}

// render prints d. When prev is set, a trend line compares the two readings.
func (a *DashboardAdapter) render(d, prev *primary.Dashboard) error {
	bold := color.New(color.Bold)
	fmt.Fprintln(a.out)
	bold.Fprintln(a.out, "Print Shop Dashboard")
	fmt.Fprintln(a.out, d.Summary)
	fmt.Fprintln(a.out)

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "🏫 Campuses\t%s\n", coredashboard.FormatLargeNumber(d.TotalCampuses))
	fmt.Fprintf(w, "🖨️ Shops\t%s\n", coredashboard.FormatLargeNumber(d.TotalShops))
	fmt.Fprintf(w, "✅ Active\t%s (%d%%)\n", coredashboard.FormatLargeNumber(d.ActiveShops), d.ActivePercentage)
	fmt.Fprintf(w, "⏸️ Inactive\t%s\n", coredashboard.FormatLargeNumber(d.InactiveShops))
	fmt.Fprintf(w, "📊 Shops per campus\t%.1f\n", d.ShopsPerCampus)
	if err := w.Flush(); err != nil {
		return err
	}

	if prev != nil {
		fmt.Fprintf(a.out, "\nSince last refresh: shops %s, active %s\n",
			trend(d.TotalShops, prev.TotalShops),
			trend(d.ActiveShops, prev.ActiveShops),
		)
	}

	a.modes("Execution modes", d.ExecutionModes)
	a.modes("Payment modes", d.PaymentModes)

	fmt.Fprintln(a.out)
	switch {
	case d.FetchedAt.IsZero():
		fmt.Fprintf(a.out, "%s No data loaded yet.\n", warnMark())
	case d.Stale:
		fmt.Fprintf(a.out, "%s Data is from %s ago. Refresh to update.\n", warnMark(), a.now().Sub(d.FetchedAt).Round(time.Second))
	default:
		fmt.Fprintf(a.out, "Updated %s\n", d.FetchedAt.Format("15:04:05"))
	}
	return nil
}

// trend renders "📈 up (+12%)" style text.
func trend(current, previous int) string {
	t := coredashboard.TrendIndicator(current, previous)
	return fmt.Sprintf("%s %s (%+d%%)", t.Symbol, t.Text, coredashboard.GrowthPercentage(current, previous))
}

func (a *DashboardAdapter) modes(title string, counts []primary.ModeCount) {
	fmt.Fprintf(a.out, "\n%s\n", title)
	if len(counts) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return
	}
	for _, c := range counts {
		fmt.Fprintf(a.out, "  %-20s %d\n", c.Label, c.Count)
	}
}
