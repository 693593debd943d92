package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/printadmin/internal/ports/primary"
)

// LogAdapter renders the local audit trail.
type LogAdapter struct {
	service primary.LogService
	out     io.Writer
}

// NewLogAdapter creates a new LogAdapter with the given service.
func NewLogAdapter(service primary.LogService, out io.Writer) *LogAdapter {
	return &LogAdapter{service: service, out: out}
}

// Tail prints the most recent entries, oldest first.
func (a *LogAdapter) Tail(ctx context.Context, filters primary.LogFilters) ([]*primary.LogEntry, error) {
	entries, err := a.service.ListLogs(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}
	a.PrintEntries(entries)
	return entries, nil
}

// PrintEntries prints entries (newest first as returned) in chronological order.
func (a *LogAdapter) PrintEntries(entries []*primary.LogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No log entries found.")
		return
	}

	fmt.Fprintf(a.out, "Found %d log entries:\n\n", len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		a.PrintEntry(entries[i])
	}
}

// PrintEntry prints one entry:
// timestamp | actor | action | entity_type/entity_id | field changes
func (a *LogAdapter) PrintEntry(entry *primary.LogEntry) {
	actorStr := entry.ActorID
	if actorStr == "" {
		actorStr = "-"
	}

	fmt.Fprintf(a.out, "%s | %-12s | %s %s | %s/%s",
		formatTimestamp(entry.Timestamp),
		actorStr,
		getActionIcon(entry.Action),
		entry.Action,
		entry.EntityType,
		entry.EntityID,
	)

	if entry.Action == "update" && entry.FieldName != "" {
		fmt.Fprintf(a.out, " | %s: %s -> %s", entry.FieldName, entry.OldValue, entry.NewValue)
	}
	fmt.Fprintln(a.out)
}

// Show prints the history of one entity, one block per change, oldest first.
func (a *LogAdapter) Show(ctx context.Context, filters primary.LogFilters) error {
	changes, err := a.service.ListChanges(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to fetch logs: %w", err)
	}
	if len(changes) == 0 {
		fmt.Fprintln(a.out, "No log entries found.")
		return nil
	}

	for i := len(changes) - 1; i >= 0; i-- {
		c := changes[i]
		actorStr := c.ActorID
		if actorStr == "" {
			actorStr = "-"
		}
		fmt.Fprintf(a.out, "%s | %-12s | %s %s | %s/%s\n",
			formatTimestamp(c.Timestamp), actorStr, getActionIcon(c.Action), c.Action, c.EntityType, c.EntityID)
		for _, f := range c.Fields {
			fmt.Fprintf(a.out, "    %s: %s -> %s\n", f.Name, f.OldValue, f.NewValue)
		}
		if c.RequestID != "" {
			fmt.Fprintf(a.out, "    request %s\n", c.RequestID)
		}
	}
	return nil
}

// Prune deletes entries older than days.
func (a *LogAdapter) Prune(ctx context.Context, days int) error {
	count, err := a.service.PruneLogs(ctx, days)
	if err != nil {
		return fmt.Errorf("failed to prune logs: %w", err)
	}

	if count == 0 {
		fmt.Fprintf(a.out, "No log entries older than %d days found.\n", days)
	} else {
		fmt.Fprintf(a.out, "%s Pruned %d log entries older than %d days.\n", okMark(), count, days)
	}
	return nil
}

func getActionIcon(action string) string {
	switch action {
	case "create":
		return "+"
	case "update":
		return "~"
	case "delete":
		return "-"
	default:
		return "?"
	}
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
