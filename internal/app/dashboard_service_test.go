package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/primary"
)

func newTestDashboard(campusAPI *mockCampusAPI, shopAPI *mockShopAPI) *DashboardServiceImpl {
	return NewDashboardService(
		NewStore[models.Campus](campusAPI.ListAll),
		NewStore[models.Shop](shopAPI.ListAll),
		5*time.Minute,
		zap.NewNop(),
	)
}

func TestDashboardService_GetDashboardRefresh(t *testing.T) {
	campusAPI := newMockCampusAPI(
		models.Campus{ID: "c1", Name: "North Campus"},
		models.Campus{ID: "c2", Name: "South Campus"},
	)
	shopAPI := newMockShopAPI(seedShops()...)
	service := newTestDashboard(campusAPI, shopAPI)

	result := service.GetDashboard(context.Background(), true)

	require.True(t, result.Success, result.Error)
	d := result.Data
	assert.Equal(t, 2, d.TotalCampuses)
	assert.Equal(t, 3, d.TotalShops)
	assert.Equal(t, 2, d.ActiveShops)
	assert.Equal(t, 1, d.InactiveShops)
	assert.Equal(t, 67, d.ActivePercentage)
	assert.InDelta(t, 1.5, d.ShopsPerCampus, 0.001)
	assert.Equal(t, "Total: 2 campuses, 3 shops (2 active)", d.Summary)
	assert.False(t, d.Stale)
	assert.Len(t, d.ExecutionModes, 3)
	assert.Equal(t, primary.ModeCount{Mode: "assisted", Label: "⚙️ Assisted", Count: 1}, d.ExecutionModes[0])

	assert.Equal(t, 1, campusAPI.callCount())
	assert.Equal(t, 1, shopAPI.callCount())
}

func TestDashboardService_WithoutRefreshUsesCache(t *testing.T) {
	campusAPI := newMockCampusAPI(models.Campus{ID: "c1"})
	shopAPI := newMockShopAPI()
	service := newTestDashboard(campusAPI, shopAPI)

	result := service.GetDashboard(context.Background(), false)

	require.True(t, result.Success)
	assert.Zero(t, result.Data.TotalCampuses)
	assert.True(t, result.Data.Stale, "never-fetched stores are stale")
	assert.Zero(t, campusAPI.callCount())
}

func TestDashboardService_StaleAfterMaxAge(t *testing.T) {
	service := newTestDashboard(newMockCampusAPI(), newMockShopAPI())
	require.True(t, service.GetDashboard(context.Background(), true).Success)

	service.now = func() time.Time { return time.Now().Add(10 * time.Minute) }
	result := service.GetDashboard(context.Background(), false)

	require.True(t, result.Success)
	assert.True(t, result.Data.Stale)
}

func TestDashboardService_RefreshFailure(t *testing.T) {
	shopAPI := newMockShopAPI()
	shopAPI.err = errors.New("connection refused")
	service := newTestDashboard(newMockCampusAPI(), shopAPI)

	result := service.GetDashboard(context.Background(), true)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "connection refused")
}
