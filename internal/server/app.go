// Package server wires the EcoTracker server together: configuration, the
// Postgres store, business services, and the gRPC and HTTP transports. It
// handles graceful shutdown on SIGINT, SIGTERM and SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/logging"
	"github.com/dmitrijs2005/ecotracker/internal/server/config"
	"github.com/dmitrijs2005/ecotracker/internal/server/httpapi"
	"github.com/dmitrijs2005/ecotracker/internal/server/metrics"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/ecotracker/internal/server/services"

	gs "github.com/dmitrijs2005/ecotracker/internal/server/grpc"
)

// tokenPurgeInterval is how often expired refresh tokens are removed.
const tokenPurgeInterval = time.Hour

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	metrics        *metrics.Metrics
	userService    *services.UserService
	entryService   *services.EntryService
	summaryService *services.SummaryService
	reportService  *services.ReportService
}

// NewCalculator builds the calculator from the factor file in c, or from the
// built-in table when none is configured.
func NewCalculator(c *config.Config) (*emission.Calculator, error) {
	if c.FactorsFile == "" {
		return emission.Default(), nil
	}
	f, err := emission.LoadFactors(c.FactorsFile)
	if err != nil {
		return nil, err
	}
	return emission.New(f)
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.New(os.Stdout, c.LogFormat, c.LogLevel)

	calc, err := NewCalculator(c)
	if err != nil {
		return nil, fmt.Errorf("emission factors error: %w", err)
	}

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgres()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	logger.Info(ctx, "schema migrated", "applied", rm.Applied)

	m := metrics.New()

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		repomanager:    rm,
		metrics:        m,
		userService:    services.NewUserService(db, rm, c),
		entryService:   services.NewEntryService(db, rm, calc, m, logger),
		summaryService: services.NewSummaryService(db, rm, calc, c.Policy(), m, logger),
		reportService:  services.NewReportService(db, rm, c),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.metrics, gs.Services{
		Users:   app.userService,
		Entries: app.entryService,
		Summary: app.summaryService,
		Reports: app.reportService,
	}, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.metrics, httpapi.Services{
		Users:   app.userService,
		Entries: app.entryService,
		Summary: app.summaryService,
		Reports: app.reportService,
	}, app.config.SecretKey, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// purgeExpiredTokens periodically removes refresh tokens past their expiry.
func (app *App) purgeExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(tokenPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.userService.PurgeExpiredTokens(ctx)
			if err != nil {
				app.logger.Warn(ctx, "refresh token purge failed", "error", err)
				continue
			}
			app.logger.Debug(ctx, "refresh tokens purged", "count", n)
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.purgeExpiredTokens(ctx)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
