package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/printadmin/internal/ports/primary"
	"github.com/example/printadmin/internal/wire"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the local audit trail",
	Long:  "View and prune the audit trail of changes made through printadmin",
}

var logTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Show recent activity",
	Long:  "Show recent audit log entries (default 50)",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter, err := wire.LogAdapter()
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = 50
		}
		filters := primary.LogFilters{Limit: limit}
		filters.ActorID, _ = cmd.Flags().GetString("by")
		filters.EntityType, _ = cmd.Flags().GetString("type")
		filters.Action, _ = cmd.Flags().GetString("action")

		_, err = adapter.Tail(NewContext(), filters)
		return err
	},
}

var logShowCmd = &cobra.Command{
	Use:   "show [entity-id]",
	Short: "Show activity for a specific campus or shop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter, err := wire.LogAdapter()
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		return adapter.Show(NewContext(), primary.LogFilters{EntityID: args[0], Limit: limit})
	},
}

var logPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old log entries",
	Long:  "Delete log entries older than the specified number of days (default 30)",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter, err := wire.LogAdapter()
		if err != nil {
			return err
		}

		days, _ := cmd.Flags().GetInt("days")
		return adapter.Prune(NewContext(), days)
	},
}

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	logTailCmd.Flags().IntP("limit", "n", 50, "Number of entries to show")
	logTailCmd.Flags().String("by", "", "Filter by actor")
	logTailCmd.Flags().StringP("type", "t", "", "Filter by entity type (campus, shop)")
	logTailCmd.Flags().String("action", "", "Filter by action (create, update, delete)")

	logShowCmd.Flags().IntP("limit", "n", 0, "Number of changes to show (0 = all)")

	logPruneCmd.Flags().Int("days", 30, "Delete entries older than this many days")

	logCmd.AddCommand(logTailCmd)
	logCmd.AddCommand(logShowCmd)
	logCmd.AddCommand(logPruneCmd)

	return logCmd
}
