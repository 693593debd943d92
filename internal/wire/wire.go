// Package wire provides dependency injection for printadmin.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/printadmin/internal/adapters/cli"
	"github.com/example/printadmin/internal/adapters/httpapi"
	"github.com/example/printadmin/internal/adapters/sqlite"
	"github.com/example/printadmin/internal/app"
	"github.com/example/printadmin/internal/config"
	"github.com/example/printadmin/internal/db"
	"github.com/example/printadmin/internal/logging"
	"github.com/example/printadmin/internal/ports/primary"
	"github.com/example/printadmin/internal/ports/secondary"
	"github.com/example/printadmin/internal/version"
)

var (
	configPath string
	verbose    bool

	cfg        *config.Config
	logger     *zap.Logger
	httpClient *httpapi.Client
	session    *app.Session
	logService primary.LogService
	database   *sql.DB
	dbErr      error
	once       sync.Once
)

// Configure sets the --config path and --verbose flag. It must be called
// before the first accessor; later calls have no effect.
func Configure(path string, verboseLogging bool) {
	configPath = path
	verbose = verboseLogging
}

// Config returns the effective configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the shared zap logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// HTTPClient returns the transport client bound to api.url.
func HTTPClient() *httpapi.Client {
	once.Do(initServices)
	return httpClient
}

// Database returns the audit log database, or the error that kept it from opening.
func Database() (*sql.DB, error) {
	once.Do(initServices)
	return database, dbErr
}

// Session returns the stores and services shared by all commands.
func Session() *app.Session {
	once.Do(initServices)
	return session
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logCfg := cfg.Log
	if verbose {
		logCfg.Level = "debug"
	}
	logger, err = logging.New(&logCfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	httpClient = httpapi.NewClient(httpapi.Options{
		BaseURL:   cfg.API.URL,
		Timeout:   cfg.API.Timeout,
		UserAgent: version.UserAgent(),
		Logger:    logger,
	})

	// The audit trail is optional: commands still run when the local
	// database cannot be opened.
	var logWriter secondary.LogWriter
	database, dbErr = db.GetDB()
	if dbErr != nil {
		logger.Warn("audit log disabled", zap.Error(dbErr))
	} else {
		logRepo := sqlite.NewAuditLogRepository(database)
		logWriter = sqlite.NewLogWriterAdapter(logRepo)
		logService = app.NewLogService(logRepo)
	}

	session = app.NewSession(app.SessionDeps{
		CampusAPI: httpapi.NewCampusClient(httpClient),
		ShopAPI:   httpapi.NewShopClient(httpClient),
		LogWriter: logWriter,
		MaxAge:    cfg.Store.MaxAge,
		Logger:    logger,
	})
}

// Close flushes the logger and closes the database.
func Close() {
	if logger != nil {
		_ = logger.Sync()
	}
	_ = db.Close()
}

// CampusAdapter returns a new CampusAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func CampusAdapter() *cliadapter.CampusAdapter {
	return CampusAdapterWithOutput(os.Stdout)
}

// CampusAdapterWithOutput returns a new CampusAdapter writing to the given output.
func CampusAdapterWithOutput(out io.Writer) *cliadapter.CampusAdapter {
	once.Do(initServices)
	return cliadapter.NewCampusAdapter(session.CampusService, out)
}

// ShopAdapter returns a new ShopAdapter writing to stdout.
func ShopAdapter() *cliadapter.ShopAdapter {
	return ShopAdapterWithOutput(os.Stdout)
}

// ShopAdapterWithOutput returns a new ShopAdapter writing to the given output.
func ShopAdapterWithOutput(out io.Writer) *cliadapter.ShopAdapter {
	once.Do(initServices)
	return cliadapter.NewShopAdapter(session.ShopService, out)
}

// DashboardAdapter returns a new DashboardAdapter writing to stdout.
func DashboardAdapter() *cliadapter.DashboardAdapter {
	return DashboardAdapterWithOutput(os.Stdout)
}

// DashboardAdapterWithOutput returns a new DashboardAdapter writing to the given output.
func DashboardAdapterWithOutput(out io.Writer) *cliadapter.DashboardAdapter {
	once.Do(initServices)
	return cliadapter.NewDashboardAdapter(session.DashboardService, out)
}

// LogAdapter returns a new LogAdapter writing to stdout.
func LogAdapter() (*cliadapter.LogAdapter, error) {
	return LogAdapterWithOutput(os.Stdout)
}

// LogAdapterWithOutput returns a new LogAdapter writing to the given output.
// It fails when the audit log database is unavailable.
func LogAdapterWithOutput(out io.Writer) (*cliadapter.LogAdapter, error) {
	once.Do(initServices)
	if logService == nil {
		return nil, fmt.Errorf("audit log unavailable: %w", dbErr)
	}
	return cliadapter.NewLogAdapter(logService, out), nil
}
