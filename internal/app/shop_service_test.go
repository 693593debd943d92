package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/primary"
)

func seedShops() []models.Shop {
	return []models.Shop{
		{ID: "s1", CampusID: "c1", Name: "Library Print Hub", ExecutionMode: models.ExecutionAuto, PaymentMode: models.PaymentBoth, IsActive: true},
		{ID: "s2", CampusID: "c1", Name: "Science Copy Centre", ExecutionMode: models.ExecutionManual, PaymentMode: models.PaymentCounter, IsActive: false},
		{ID: "s3", CampusID: "c2", Name: "Union Prints", ExecutionMode: models.ExecutionAssisted, PaymentMode: models.PaymentPrepaid, IsActive: true},
	}
}

func newTestShopService(seed ...models.Shop) (*ShopServiceImpl, *mockShopAPI, *mockLogWriter) {
	api := newMockShopAPI(seed...)
	logs := &mockLogWriter{}
	store := NewStore[models.Shop](api.ListAll)
	return NewShopService(api, store, logs, zap.NewNop()), api, logs
}

func TestShopService_UpdateIsActiveFalse(t *testing.T) {
	service, api, logs := newTestShopService(seedShops()...)
	ctx := context.Background()
	require.True(t, service.ListShops(ctx, primary.ShopFilters{}).Success)

	result := service.UpdateShop(ctx, "s1", models.ShopPayload{IsActive: models.Ptr(false)})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "Shop updated successfully", result.Message)

	// exactly {is_active:false} is sent
	require.Len(t, api.payloads, 1)
	assert.Equal(t, models.ShopPayload{IsActive: models.Ptr(false)}, api.payloads[0])

	cached := service.CachedShops()
	require.Len(t, cached, 3)
	assert.False(t, cached[0].IsActive)
	assert.Equal(t, "Library Print Hub", cached[0].Name, "other fields untouched")
	assert.Equal(t, models.ExecutionAuto, cached[0].ExecutionMode)

	assert.Equal(t, []logCall{{action: "update", entityType: "shop", entityID: "s1", field: "is_active", old: "true", new: "false"}}, logs.calls)
}

func TestShopService_CreateShop(t *testing.T) {
	service, api, logs := newTestShopService()

	result := service.CreateShop(context.Background(), models.ShopPayload{
		CampusID:      models.Ptr(" c1 "),
		Name:          models.Ptr(" Library Print Hub "),
		ExecutionMode: models.Ptr(models.ExecutionAuto),
		PaymentMode:   models.Ptr(models.PaymentBoth),
	})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "Shop created successfully", result.Message)
	assert.Equal(t, "c1", *api.payloads[0].CampusID)
	assert.Equal(t, "Library Print Hub", *api.payloads[0].Name)
	assert.Nil(t, api.payloads[0].IsActive, "is_active is defaulted by the server")
	assert.True(t, result.Data.IsActive)
	assert.Len(t, service.CachedShops(), 1)
	assert.Len(t, logs.calls, 1)
}

func TestShopService_CreateValidation(t *testing.T) {
	tests := []struct {
		name       string
		payload    models.ShopPayload
		wantError  string
		wantFields []string
	}{
		{
			name:       "missing everything reports name first",
			payload:    models.ShopPayload{},
			wantError:  "Shop name is required",
			wantFields: []string{"name", "campus_id", "execution_mode", "payment_mode"},
		},
		{
			name: "invalid enum",
			payload: models.ShopPayload{
				CampusID:      models.Ptr("c1"),
				Name:          models.Ptr("Library Print Hub"),
				ExecutionMode: models.Ptr(models.ExecutionMode("robotic")),
				PaymentMode:   models.Ptr(models.PaymentBoth),
			},
			wantError:  "Valid execution mode is required",
			wantFields: []string{"execution_mode"},
		},
		{
			name: "missing campus",
			payload: models.ShopPayload{
				Name:          models.Ptr("Library Print Hub"),
				ExecutionMode: models.Ptr(models.ExecutionAuto),
				PaymentMode:   models.Ptr(models.PaymentBoth),
			},
			wantError:  "Campus selection is required",
			wantFields: []string{"campus_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, api, _ := newTestShopService()

			result := service.CreateShop(context.Background(), tt.payload)

			assert.False(t, result.Success)
			assert.Equal(t, tt.wantError, result.Error)
			for _, f := range tt.wantFields {
				assert.Contains(t, result.Errors, f)
			}
			assert.Len(t, result.Errors, len(tt.wantFields))
			assert.Zero(t, api.callCount())
		})
	}
}

func TestShopService_UpdateRejectsCampusChange(t *testing.T) {
	service, api, _ := newTestShopService(seedShops()...)

	result := service.UpdateShop(context.Background(), "s1", models.ShopPayload{CampusID: models.Ptr("c2")})

	assert.False(t, result.Success)
	assert.Equal(t, "Campus cannot be changed after creation", result.Error)
	assert.Zero(t, api.callCount())
}

func TestShopService_CreateConflictIsScopedToCampus(t *testing.T) {
	service, api, _ := newTestShopService()
	api.err = &statusErr{status: 409}

	result := service.CreateShop(context.Background(), models.ShopPayload{
		CampusID:      models.Ptr("c1"),
		Name:          models.Ptr("Library Print Hub"),
		ExecutionMode: models.Ptr(models.ExecutionAuto),
		PaymentMode:   models.Ptr(models.PaymentBoth),
	})

	assert.False(t, result.Success)
	assert.Equal(t, `A shop with the name "Library Print Hub" already exists in this campus. Please use a different name.`, result.Error)
}

func TestShopService_ListShopsFilters(t *testing.T) {
	active := true
	tests := []struct {
		name    string
		filters primary.ShopFilters
		wantIDs []string
		wantMsg string
	}{
		{"no filters", primary.ShopFilters{}, []string{"s1", "s2", "s3"}, "Shops fetched successfully"},
		{"by campus", primary.ShopFilters{CampusID: "c1"}, []string{"s1", "s2"}, "Shops for campus fetched successfully"},
		{"by execution mode", primary.ShopFilters{ExecutionMode: "AUTO"}, []string{"s1"}, "Shops fetched successfully"},
		{"by payment mode", primary.ShopFilters{PaymentMode: "prepaid"}, []string{"s3"}, "Shops fetched successfully"},
		{"active only", primary.ShopFilters{Active: &active}, []string{"s1", "s3"}, "Shops fetched successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestShopService(seedShops()...)

			result := service.ListShops(context.Background(), tt.filters)

			require.True(t, result.Success)
			assert.Equal(t, tt.wantMsg, result.Message)
			var ids []string
			for _, s := range *result.Data {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Len(t, service.CachedShops(), 3, "store keeps the full collection")
		})
	}
}

func TestShopService_DeleteShop(t *testing.T) {
	service, _, logs := newTestShopService(seedShops()...)
	ctx := context.Background()
	require.True(t, service.ListShops(ctx, primary.ShopFilters{}).Success)

	result := service.DeleteShop(ctx, "s2")

	require.True(t, result.Success, result.Error)
	assert.Len(t, service.CachedShops(), 2)
	assert.Equal(t, []logCall{{action: "delete", entityType: "shop", entityID: "s2"}}, logs.calls)
}

func TestShopService_UpdateTrimsID(t *testing.T) {
	service, _, logs := newTestShopService(seedShops()...)
	ctx := context.Background()
	require.True(t, service.ListShops(ctx, primary.ShopFilters{}).Success)

	result := service.UpdateShop(ctx, " s1 ", models.ShopPayload{IsActive: models.Ptr(false)})

	require.True(t, result.Success, result.Error)
	assert.False(t, service.CachedShops()[0].IsActive)
	require.Len(t, logs.calls, 1)
	assert.Equal(t, "s1", logs.calls[0].entityID)
}

func TestShopService_DeleteRequiresID(t *testing.T) {
	service, api, _ := newTestShopService()

	result := service.DeleteShop(context.Background(), "")

	assert.False(t, result.Success)
	assert.Equal(t, "Shop id is required", result.Error)
	assert.Zero(t, api.callCount())
}

func TestShopService_UpdateWithoutChangesWritesNoAudit(t *testing.T) {
	service, _, logs := newTestShopService(seedShops()...)
	ctx := context.Background()
	require.True(t, service.ListShops(ctx, primary.ShopFilters{}).Success)

	result := service.UpdateShop(ctx, "s1", models.ShopPayload{Name: models.Ptr("Library Print Hub")})

	require.True(t, result.Success)
	assert.Empty(t, logs.calls)
}

func TestShopService_MultiFieldUpdateWritesOneRowPerField(t *testing.T) {
	service, _, logs := newTestShopService(seedShops()...)
	ctx := context.Background()
	require.True(t, service.ListShops(ctx, primary.ShopFilters{}).Success)

	result := service.UpdateShop(ctx, "s2", models.ShopPayload{
		Name:          models.Ptr("Science Print Centre"),
		ExecutionMode: models.Ptr(models.ExecutionAssisted),
		PaymentMode:   models.Ptr(models.PaymentCounter),
	})

	require.True(t, result.Success)
	assert.Equal(t, []logCall{
		{action: "update", entityType: "shop", entityID: "s2", field: "name", old: "Science Copy Centre", new: "Science Print Centre"},
		{action: "update", entityType: "shop", entityID: "s2", field: "execution_mode", old: "manual", new: "assisted"},
	}, logs.calls)
}
