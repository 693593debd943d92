package app

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/secondary"
)

// fieldChange is one changed field of an update, recorded as one audit row.
type fieldChange struct {
	field    string
	old, new string
}

// auditor writes audit rows after successful mutations. Failures are logged
// and swallowed: the backend change already happened.
type auditor struct {
	writer secondary.LogWriter
	logger *zap.Logger
}

func (a auditor) created(ctx context.Context, entityType, id string) {
	if a.writer == nil {
		return
	}
	if err := a.writer.LogCreate(ctx, entityType, id); err != nil {
		a.warn(err, entityType, id, "create")
	}
}

func (a auditor) updated(ctx context.Context, entityType, id string, changes []fieldChange) {
	if a.writer == nil {
		return
	}
	for _, c := range changes {
		if err := a.writer.LogUpdate(ctx, entityType, id, c.field, c.old, c.new); err != nil {
			a.warn(err, entityType, id, "update")
			return
		}
	}
}

func (a auditor) deleted(ctx context.Context, entityType, id string) {
	if a.writer == nil {
		return
	}
	if err := a.writer.LogDelete(ctx, entityType, id); err != nil {
		a.warn(err, entityType, id, "delete")
	}
}

func (a auditor) warn(err error, entityType, id, action string) {
	a.logger.Warn("failed to write audit log",
		zap.String("entity_type", entityType),
		zap.String("entity_id", id),
		zap.String("action", action),
		zap.Error(err),
	)
}

// campusChanges lists the fields of p that differ from before.
func campusChanges(before models.Campus, p models.CampusPayload) []fieldChange {
	var out []fieldChange
	if p.Name != nil && *p.Name != before.Name {
		out = append(out, fieldChange{"name", before.Name, *p.Name})
	}
	if p.Location != nil && *p.Location != before.Location {
		out = append(out, fieldChange{"location", before.Location, *p.Location})
	}
	return out
}

// shopChanges lists the mutable fields of p that differ from before.
func shopChanges(before models.Shop, p models.ShopPayload) []fieldChange {
	var out []fieldChange
	if p.Name != nil && *p.Name != before.Name {
		out = append(out, fieldChange{"name", before.Name, *p.Name})
	}
	if p.ExecutionMode != nil && *p.ExecutionMode != before.ExecutionMode {
		out = append(out, fieldChange{"execution_mode", string(before.ExecutionMode), string(*p.ExecutionMode)})
	}
	if p.PaymentMode != nil && *p.PaymentMode != before.PaymentMode {
		out = append(out, fieldChange{"payment_mode", string(before.PaymentMode), string(*p.PaymentMode)})
	}
	if p.IsActive != nil && *p.IsActive != before.IsActive {
		out = append(out, fieldChange{"is_active", strconv.FormatBool(before.IsActive), strconv.FormatBool(*p.IsActive)})
	}
	return out
}
