package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	corecampus "github.com/example/printadmin/internal/core/campus"
	"github.com/example/printadmin/internal/ctxutil"
	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/primary"
	"github.com/example/printadmin/internal/ports/secondary"
)

// CampusServiceImpl implements the CampusService interface.
type CampusServiceImpl struct {
	api    secondary.CampusAPI
	store  *Store[models.Campus]
	audit  auditor
	logger *zap.Logger
	guard  *inflightGuard
}

// NewCampusService creates a new CampusService with injected dependencies.
// logWriter may be nil to disable the audit trail.
func NewCampusService(
	api secondary.CampusAPI,
	store *Store[models.Campus],
	logWriter secondary.LogWriter,
	logger *zap.Logger,
) *CampusServiceImpl {
	logger = logger.Named("campus")
	return &CampusServiceImpl{
		api:    api,
		store:  store,
		audit:  auditor{writer: logWriter, logger: logger},
		logger: logger,
		guard:  newInflightGuard(),
	}
}

// ListCampuses refreshes the store from the backend.
func (s *CampusServiceImpl) ListCampuses(ctx context.Context) *primary.Result[[]models.Campus] {
	if err := s.store.FetchAll(ctx); err != nil {
		s.logger.Debug("fetch failed", zap.Error(err))
		return primary.Fail[[]models.Campus](classifyFailure(err, opFetch, campusKind, nil))
	}
	items := s.store.Items()
	return primary.Ok(&items, "Campuses fetched successfully")
}

// CreateCampus validates, normalizes and sends a new campus.
func (s *CampusServiceImpl) CreateCampus(ctx context.Context, payload models.CampusPayload) *primary.Result[models.Campus] {
	// 1. Validate before touching the network
	if v := corecampus.Validate(payload, false); !v.Valid {
		return invalid[models.Campus](v)
	}

	// 2. Normalize
	payload = corecampus.Normalize(payload)

	// 3. Send
	ctx, _ = ctxutil.NewRequestID(ctx)
	created, err := s.api.Create(ctx, payload)
	if err != nil {
		s.logger.Debug("create failed", zap.Error(err))
		return primary.Fail[models.Campus](classifyFailure(err, opCreate, campusKind, payload.Name))
	}

	// 4. Update the store and record the change
	s.store.Add(*created)
	s.audit.created(ctx, campusKind.name, created.ID)

	return primary.Ok(created, "Campus created successfully")
}

// UpdateCampus sends a partial update; only non-nil payload fields change.
func (s *CampusServiceImpl) UpdateCampus(ctx context.Context, campusID string, payload models.CampusPayload) *primary.Result[models.Campus] {
	campusID = strings.TrimSpace(campusID)
	if campusID == "" {
		return primary.Fail[models.Campus](campusKind.idRequired())
	}
	if v := corecampus.Validate(payload, true); !v.Valid {
		return invalid[models.Campus](v)
	}
	payload = corecampus.Normalize(payload)

	if !s.guard.acquire(campusID) {
		return primary.Fail[models.Campus](campusKind.busy(campusID))
	}
	defer s.guard.release(campusID)

	before, _ := s.store.Find(campusID)

	ctx, _ = ctxutil.NewRequestID(ctx)
	updated, err := s.api.Update(ctx, campusID, payload)
	if err != nil {
		s.logger.Debug("update failed", zap.String("campus_id", campusID), zap.Error(err))
		return primary.Fail[models.Campus](classifyFailure(err, opUpdate, campusKind, payload.Name))
	}

	s.store.Edit(campusID, func(c *models.Campus) { c.Apply(payload) })
	s.audit.updated(ctx, campusKind.name, campusID, campusChanges(before, payload))

	return primary.Ok(updated, "Campus updated successfully")
}

// DeleteCampus hard-deletes a campus. Data holds the cached record, if any.
func (s *CampusServiceImpl) DeleteCampus(ctx context.Context, campusID string) *primary.Result[models.Campus] {
	campusID = strings.TrimSpace(campusID)
	if campusID == "" {
		return primary.Fail[models.Campus](campusKind.idRequired())
	}

	if !s.guard.acquire(campusID) {
		return primary.Fail[models.Campus](campusKind.busy(campusID))
	}
	defer s.guard.release(campusID)

	ctx, _ = ctxutil.NewRequestID(ctx)
	if err := s.api.Delete(ctx, campusID); err != nil {
		s.logger.Debug("delete failed", zap.String("campus_id", campusID), zap.Error(err))
		return primary.Fail[models.Campus](classifyFailure(err, opDelete, campusKind, nil))
	}

	var data *models.Campus
	if before, ok := s.store.Find(campusID); ok {
		data = &before
	}
	s.store.Remove(campusID)
	s.audit.deleted(ctx, campusKind.name, campusID)

	return primary.Ok(data, "Campus deleted successfully")
}

// CachedCampuses returns the last-known collection without a network call.
func (s *CampusServiceImpl) CachedCampuses() []models.Campus {
	return s.store.Items()
}

// Ensure CampusServiceImpl implements the interface
var _ primary.CampusService = (*CampusServiceImpl)(nil)
