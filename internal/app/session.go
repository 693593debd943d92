package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/secondary"
)

// Session owns the per-invocation stores and the services that share them.
// Build one per process; every view reads the same stores.
type Session struct {
	Campuses *Store[models.Campus]
	Shops    *Store[models.Shop]

	CampusService    *CampusServiceImpl
	ShopService      *ShopServiceImpl
	DashboardService *DashboardServiceImpl
}

// SessionDeps are the driven adapters a Session needs.
type SessionDeps struct {
	CampusAPI secondary.CampusAPI
	ShopAPI   secondary.ShopAPI
	LogWriter secondary.LogWriter // nil disables the audit trail
	MaxAge    time.Duration
	Logger    *zap.Logger
}

// NewSession wires stores and services around deps.
func NewSession(deps SessionDeps) *Session {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	campuses := NewStore[models.Campus](deps.CampusAPI.ListAll)
	shops := NewStore[models.Shop](deps.ShopAPI.ListAll)

	return &Session{
		Campuses:         campuses,
		Shops:            shops,
		CampusService:    NewCampusService(deps.CampusAPI, campuses, deps.LogWriter, logger),
		ShopService:      NewShopService(deps.ShopAPI, shops, deps.LogWriter, logger),
		DashboardService: NewDashboardService(campuses, shops, deps.MaxAge, logger),
	}
}
