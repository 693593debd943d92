package cli

import (
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/printadmin/internal/wire"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	var watch time.Duration

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show campus and shop totals",
		Long: `Show aggregate counts for campuses and shops.

Both collections are fetched in parallel before rendering. With --watch the
dashboard is refreshed on an interval; when a refresh fails the last-known
data is shown with a note on how old it is.

Examples:
  printadmin dashboard
  printadmin dashboard --watch 30s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.DashboardAdapter()
			if watch <= 0 {
				return adapter.Show(NewContext(), true)
			}

			ctx, stop := signal.NotifyContext(NewContext(), os.Interrupt)
			defer stop()
			return adapter.Watch(ctx, watch)
		},
	}

	cmd.Flags().DurationVarP(&watch, "watch", "w", 0, "Refresh interval (e.g. 30s); 0 renders once")
	return cmd
}

