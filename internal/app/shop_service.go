package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	coreshop "github.com/example/printadmin/internal/core/shop"
	"github.com/example/printadmin/internal/ctxutil"
	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/primary"
	"github.com/example/printadmin/internal/ports/secondary"
)

// ShopServiceImpl implements the ShopService interface.
type ShopServiceImpl struct {
	api    secondary.ShopAPI
	store  *Store[models.Shop]
	audit  auditor
	logger *zap.Logger
	guard  *inflightGuard
}

// NewShopService creates a new ShopService with injected dependencies.
// logWriter may be nil to disable the audit trail.
func NewShopService(
	api secondary.ShopAPI,
	store *Store[models.Shop],
	logWriter secondary.LogWriter,
	logger *zap.Logger,
) *ShopServiceImpl {
	logger = logger.Named("shop")
	return &ShopServiceImpl{
		api:    api,
		store:  store,
		audit:  auditor{writer: logWriter, logger: logger},
		logger: logger,
		guard:  newInflightGuard(),
	}
}

// ListShops refreshes the store from the backend and returns the shops
// matching filters.
func (s *ShopServiceImpl) ListShops(ctx context.Context, filters primary.ShopFilters) *primary.Result[[]models.Shop] {
	if err := s.store.FetchAll(ctx); err != nil {
		s.logger.Debug("fetch failed", zap.Error(err))
		return primary.Fail[[]models.Shop](classifyFailure(err, opFetch, shopKind, nil))
	}

	filter := coreshop.Filter{
		CampusID:      filters.CampusID,
		ExecutionMode: coreshop.ParseExecutionMode(filters.ExecutionMode),
		PaymentMode:   coreshop.ParsePaymentMode(filters.PaymentMode),
		Active:        filters.Active,
	}
	items := filter.Apply(s.store.Items())

	msg := "Shops fetched successfully"
	if filters.CampusID != "" {
		msg = "Shops for campus fetched successfully"
	}
	return primary.Ok(&items, msg)
}

// CreateShop validates, normalizes and sends a new shop.
func (s *ShopServiceImpl) CreateShop(ctx context.Context, payload models.ShopPayload) *primary.Result[models.Shop] {
	// 1. Validate before touching the network
	if v := coreshop.Validate(payload, false); !v.Valid {
		return invalid[models.Shop](v)
	}

	// 2. Normalize
	payload = coreshop.Normalize(payload)

	// 3. Send
	ctx, _ = ctxutil.NewRequestID(ctx)
	created, err := s.api.Create(ctx, payload)
	if err != nil {
		s.logger.Debug("create failed", zap.Error(err))
		return primary.Fail[models.Shop](classifyFailure(err, opCreate, shopKind, payload.Name))
	}

	// 4. Update the store and record the change
	s.store.Add(*created)
	s.audit.created(ctx, shopKind.name, created.ID)

	return primary.Ok(created, "Shop created successfully")
}

// UpdateShop sends a partial update; only non-nil payload fields change.
func (s *ShopServiceImpl) UpdateShop(ctx context.Context, shopID string, payload models.ShopPayload) *primary.Result[models.Shop] {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return primary.Fail[models.Shop](shopKind.idRequired())
	}
	if v := coreshop.Validate(payload, true); !v.Valid {
		return invalid[models.Shop](v)
	}
	payload = coreshop.Normalize(payload)

	if !s.guard.acquire(shopID) {
		return primary.Fail[models.Shop](shopKind.busy(shopID))
	}
	defer s.guard.release(shopID)

	before, _ := s.store.Find(shopID)

	ctx, _ = ctxutil.NewRequestID(ctx)
	updated, err := s.api.Update(ctx, shopID, payload)
	if err != nil {
		s.logger.Debug("update failed", zap.String("shop_id", shopID), zap.Error(err))
		return primary.Fail[models.Shop](classifyFailure(err, opUpdate, shopKind, payload.Name))
	}

	s.store.Edit(shopID, func(sh *models.Shop) { sh.Apply(payload) })
	s.audit.updated(ctx, shopKind.name, shopID, shopChanges(before, payload))

	return primary.Ok(updated, "Shop updated successfully")
}

// DeleteShop hard-deletes a shop. Data holds the cached record, if any.
func (s *ShopServiceImpl) DeleteShop(ctx context.Context, shopID string) *primary.Result[models.Shop] {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return primary.Fail[models.Shop](shopKind.idRequired())
	}

	if !s.guard.acquire(shopID) {
		return primary.Fail[models.Shop](shopKind.busy(shopID))
	}
	defer s.guard.release(shopID)

	ctx, _ = ctxutil.NewRequestID(ctx)
	if err := s.api.Delete(ctx, shopID); err != nil {
		s.logger.Debug("delete failed", zap.String("shop_id", shopID), zap.Error(err))
		return primary.Fail[models.Shop](classifyFailure(err, opDelete, shopKind, nil))
	}

	var data *models.Shop
	if before, ok := s.store.Find(shopID); ok {
		data = &before
	}
	s.store.Remove(shopID)
	s.audit.deleted(ctx, shopKind.name, shopID)

	return primary.Ok(data, "Shop deleted successfully")
}

// CachedShops returns the last-known collection without a network call.
func (s *ShopServiceImpl) CachedShops() []models.Shop {
	return s.store.Items()
}

// Ensure ShopServiceImpl implements the interface
var _ primary.ShopService = (*ShopServiceImpl)(nil)
