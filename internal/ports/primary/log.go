package primary

import "context"

// LogService defines the primary port for the local audit trail of mutations.
type LogService interface {
	// ListLogs retrieves log entries matching the given filters, newest first.
	ListLogs(ctx context.Context, filters LogFilters) ([]*LogEntry, error)

	// ListChanges groups matching entries by mutation, newest first. Limit
	// counts changes, not rows.
	ListChanges(ctx context.Context, filters LogFilters) ([]*Change, error)

	// PruneLogs deletes log entries older than the specified number of days.
	PruneLogs(ctx context.Context, olderThanDays int) (int, error)
}

// LogEntry represents an audit log entry at the port boundary.
type LogEntry struct {
	ID         string
	Timestamp  string
	ActorID    string
	EntityType string // "campus" or "shop"
	EntityID   string
	Action     string // 'create', 'update', 'delete'
	FieldName  string // For updates only
	OldValue   string
	NewValue   string
	RequestID  string // X-Request-ID of the backend call
}

// LogFilters contains filter options for querying logs.
type LogFilters struct {
	EntityType string
	EntityID   string
	ActorID    string
	Action     string
	Limit      int
}

// Change is one mutation as recorded in the audit log. An update touching
// several fields is one Change with several Fields.
type Change struct {
	RequestID  string
	Timestamp  string
	ActorID    string
	EntityType string
	EntityID   string
	Action     string
	Fields     []FieldChange // in the order they were written; empty for create and delete
}

// FieldChange is a single field's before and after value.
type FieldChange struct {
	Name     string
	OldValue string
	NewValue string
}
