package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/example/printadmin/internal/ports/primary"
	"github.com/example/printadmin/internal/ports/secondary"
)

var (
	auditEntityTypes = []string{campusKind.name, shopKind.name}
	auditActions     = []string{"create", "update", "delete"}
)

// LogServiceImpl reads and prunes the audit trail written by the campus and
// shop services.
type LogServiceImpl struct {
	repo secondary.AuditLogRepository
}

// NewLogService creates a LogService over the audit log repository.
func NewLogService(repo secondary.AuditLogRepository) *LogServiceImpl {
	return &LogServiceImpl{repo: repo}
}

// ListLogs returns the rows matching filters, newest first.
func (s *LogServiceImpl) ListLogs(ctx context.Context, filters primary.LogFilters) ([]*primary.LogEntry, error) {
	query, err := auditQuery(filters)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}

	entries := make([]*primary.LogEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.LogEntry{
			ID:         r.ID,
			Timestamp:  r.Timestamp,
			ActorID:    r.ActorID,
			EntityType: r.EntityType,
			EntityID:   r.EntityID,
			Action:     r.Action,
			FieldName:  r.FieldName,
			OldValue:   r.OldValue,
			NewValue:   r.NewValue,
			RequestID:  r.RequestID,
		}
	}
	return entries, nil
}

// ListChanges folds the per-field rows of each mutation back together using
// the request id. Rows written without one stand alone.
func (s *LogServiceImpl) ListChanges(ctx context.Context, filters primary.LogFilters) ([]*primary.Change, error) {
	query, err := auditQuery(filters)
	if err != nil {
		return nil, err
	}
	limit := query.Limit
	query.Limit = 0

	records, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}

	var changes []*primary.Change
	byKey := map[string]*primary.Change{}
	for _, r := range records {
		key := r.ID
		if r.RequestID != "" {
			key = r.RequestID + "/" + r.EntityType + "/" + r.EntityID
		}

		c, ok := byKey[key]
		if !ok {
			if limit > 0 && len(changes) == limit {
				continue
			}
			c = &primary.Change{
				RequestID:  r.RequestID,
				Timestamp:  r.Timestamp,
				ActorID:    r.ActorID,
				EntityType: r.EntityType,
				EntityID:   r.EntityID,
				Action:     r.Action,
			}
			byKey[key] = c
			changes = append(changes, c)
		}

		if r.FieldName != "" {
			// rows arrive newest first; prepend to restore write order
			c.Fields = append([]primary.FieldChange{{Name: r.FieldName, OldValue: r.OldValue, NewValue: r.NewValue}}, c.Fields...)
		}
	}
	return changes, nil
}

// PruneLogs deletes entries older than olderThanDays. Zero clears the log.
func (s *LogServiceImpl) PruneLogs(ctx context.Context, olderThanDays int) (int, error) {
	if olderThanDays < 0 {
		return 0, fmt.Errorf("days must not be negative, got %d", olderThanDays)
	}
	count, err := s.repo.PruneOlderThan(ctx, olderThanDays)
	if err != nil {
		return 0, fmt.Errorf("failed to prune audit log: %w", err)
	}
	return count, nil
}

// auditQuery normalizes filters and rejects values the audit_logs CHECK
// constraints could never match.
func auditQuery(f primary.LogFilters) (secondary.AuditLogFilters, error) {
	q := secondary.AuditLogFilters{
		EntityType: strings.ToLower(strings.TrimSpace(f.EntityType)),
		EntityID:   strings.TrimSpace(f.EntityID),
		ActorID:    strings.TrimSpace(f.ActorID),
		Action:     strings.ToLower(strings.TrimSpace(f.Action)),
		Limit:      f.Limit,
	}
	if q.EntityType != "" && !slices.Contains(auditEntityTypes, q.EntityType) {
		return q, fmt.Errorf("unknown entity type %q (use %s)", f.EntityType, strings.Join(auditEntityTypes, " or "))
	}
	if q.Action != "" && !slices.Contains(auditActions, q.Action) {
		return q, fmt.Errorf("unknown action %q (use %s)", f.Action, strings.Join(auditActions, ", "))
	}
	if q.Limit < 0 {
		return q, fmt.Errorf("limit must not be negative, got %d", f.Limit)
	}
	return q, nil
}

// Ensure LogServiceImpl implements the interface
var _ primary.LogService = (*LogServiceImpl)(nil)
