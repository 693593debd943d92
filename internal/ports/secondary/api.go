// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/printadmin/internal/models"
)

// CampusAPI defines the secondary port for the campus REST resource.
// Implementations report non-2xx responses as errors carrying the HTTP status;
// they never interpret the status themselves.
type CampusAPI interface {
	// ListAll fetches the full campus collection.
	ListAll(ctx context.Context) ([]models.Campus, error)

	// Create sends a new campus and returns the server-assigned record.
	Create(ctx context.Context, payload models.CampusPayload) (*models.Campus, error)

	// Update sends a partial update and returns the updated record.
	Update(ctx context.Context, id string, payload models.CampusPayload) (*models.Campus, error)

	// Delete removes a campus.
	Delete(ctx context.Context, id string) error
}

// ShopAPI defines the secondary port for the shop REST resource.
type ShopAPI interface {
	// ListAll fetches the full shop collection.
	ListAll(ctx context.Context) ([]models.Shop, error)

	// Create sends a new shop and returns the server-assigned record.
	Create(ctx context.Context, payload models.ShopPayload) (*models.Shop, error)

	// Update sends a partial update and returns the updated record.
	Update(ctx context.Context, id string, payload models.ShopPayload) (*models.Shop, error)

	// Delete removes a shop.
	Delete(ctx context.Context, id string) error
}
