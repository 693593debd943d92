package cli

import (
	"context"

	"github.com/fatih/color"

	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/primary"
)

func init() {
	color.NoColor = true
}

// mockCampusService implements primary.CampusService for testing
type mockCampusService struct {
	listFn   func(ctx context.Context) *primary.Result[[]models.Campus]
	createFn func(ctx context.Context, p models.CampusPayload) *primary.Result[models.Campus]
	updateFn func(ctx context.Context, id string, p models.CampusPayload) *primary.Result[models.Campus]
	deleteFn func(ctx context.Context, id string) *primary.Result[models.Campus]

	// Track calls for verification
	lastPayload models.CampusPayload
	lastID      string
	calls       int
}

func (m *mockCampusService) ListCampuses(ctx context.Context) *primary.Result[[]models.Campus] {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	empty := []models.Campus{}
	return primary.Ok(&empty, "")
}

func (m *mockCampusService) CreateCampus(ctx context.Context, p models.CampusPayload) *primary.Result[models.Campus] {
	m.calls++
	m.lastPayload = p
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	c := models.Campus{ID: "c1"}
	c.Apply(p)
	return primary.Ok(&c, "Campus created successfully")
}

func (m *mockCampusService) UpdateCampus(ctx context.Context, id string, p models.CampusPayload) *primary.Result[models.Campus] {
	m.calls++
	m.lastID, m.lastPayload = id, p
	if m.updateFn != nil {
		return m.updateFn(ctx, id, p)
	}
	c := models.Campus{ID: id, Name: "North Campus", Location: "123 Main St"}
	c.Apply(p)
	return primary.Ok(&c, "Campus updated successfully")
}

func (m *mockCampusService) DeleteCampus(ctx context.Context, id string) *primary.Result[models.Campus] {
	m.calls++
	m.lastID = id
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return primary.Ok[models.Campus](nil, "Campus deleted successfully")
}

func (m *mockCampusService) CachedCampuses() []models.Campus { return nil }

// mockShopService implements primary.ShopService for testing
type mockShopService struct {
	shops       []models.Shop
	lastFilters primary.ShopFilters
	lastPayload models.ShopPayload
	result      *primary.Result[models.Shop]
	calls       int
}

func (m *mockShopService) ListShops(ctx context.Context, filters primary.ShopFilters) *primary.Result[[]models.Shop] {
	m.calls++
	m.lastFilters = filters
	shops := append([]models.Shop{}, m.shops...)
	return primary.Ok(&shops, "Shops fetched successfully")
}

func (m *mockShopService) CreateShop(ctx context.Context, p models.ShopPayload) *primary.Result[models.Shop] {
	m.calls++
	m.lastPayload = p
	return m.result
}

func (m *mockShopService) UpdateShop(ctx context.Context, id string, p models.ShopPayload) *primary.Result[models.Shop] {
	m.calls++
	m.lastPayload = p
	return m.result
}

func (m *mockShopService) DeleteShop(ctx context.Context, id string) *primary.Result[models.Shop] {
	m.calls++
	return m.result
}

func (m *mockShopService) CachedShops() []models.Shop { return m.shops }

// mockDashboardService implements primary.DashboardService for testing
type mockDashboardService struct {
	result      *primary.Result[primary.Dashboard]
	lastRefresh bool
}

func (m *mockDashboardService) GetDashboard(ctx context.Context, refresh bool) *primary.Result[primary.Dashboard] {
	m.lastRefresh = refresh
	return m.result
}

// mockLogService implements primary.LogService for testing
type mockLogService struct {
	entries     []*primary.LogEntry
	changes     []*primary.Change
	pruned      int
	err         error
	lastFilters primary.LogFilters
}

func (m *mockLogService) ListLogs(ctx context.Context, filters primary.LogFilters) ([]*primary.LogEntry, error) {
	m.lastFilters = filters
	return m.entries, m.err
}

func (m *mockLogService) ListChanges(ctx context.Context, filters primary.LogFilters) ([]*primary.Change, error) {
	m.lastFilters = filters
	return m.changes, m.err
}

func (m *mockLogService) PruneLogs(ctx context.Context, days int) (int, error) {
	return m.pruned, m.err
}
