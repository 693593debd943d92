package primary

import (
	"context"

	"github.com/example/printadmin/internal/models"
)

// CampusService defines the primary port for campus operations.
type CampusService interface {
	// ListCampuses refreshes the campus store from the backend and returns it.
	ListCampuses(ctx context.Context) *Result[[]models.Campus]

	// CreateCampus validates, normalizes and sends a new campus.
	CreateCampus(ctx context.Context, payload models.CampusPayload) *Result[models.Campus]

	// UpdateCampus sends a partial update; only non-nil payload fields change.
	UpdateCampus(ctx context.Context, campusID string, payload models.CampusPayload) *Result[models.Campus]

	// DeleteCampus hard-deletes a campus.
	DeleteCampus(ctx context.Context, campusID string) *Result[models.Campus]

	// CachedCampuses returns the last-known collection without a network call.
	CachedCampuses() []models.Campus
}
