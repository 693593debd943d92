package primary

import (
	"context"

	"github.com/example/printadmin/internal/models"
)

// ShopService defines the primary port for shop operations.
type ShopService interface {
	// ListShops refreshes the shop store from the backend and returns the
	// shops matching filters.
	ListShops(ctx context.Context, filters ShopFilters) *Result[[]models.Shop]

	// CreateShop validates, normalizes and sends a new shop.
	CreateShop(ctx context.Context, payload models.ShopPayload) *Result[models.Shop]

	// UpdateShop sends a partial update; only non-nil payload fields change.
	UpdateShop(ctx context.Context, shopID string, payload models.ShopPayload) *Result[models.Shop]

	// DeleteShop hard-deletes a shop.
	DeleteShop(ctx context.Context, shopID string) *Result[models.Shop]

	// CachedShops returns the last-known collection without a network call.
	CachedShops() []models.Shop
}

// ShopFilters contains filter options for listing shops. Zero values match all.
type ShopFilters struct {
	CampusID      string
	ExecutionMode string
	PaymentMode   string
	Active        *bool
}
