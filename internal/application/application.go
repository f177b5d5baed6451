package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dyvideostats/internal/api"
	"dyvideostats/internal/api/handlers"
	"dyvideostats/internal/config"
	pgprovider "dyvideostats/internal/infrastructure"
	"dyvideostats/internal/infrastructure/dbtx"
	"dyvideostats/internal/repo"
	"dyvideostats/internal/service"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

type Application struct {
	cfg      *config.Config
	logger   *zap.SugaredLogger
	db       *pgprovider.Provider
	service  *service.Service
	router   *api.Router
	group    *errgroup.Group
	groupCtx context.Context
}

func NewApplication() *Application {
	return &Application{}
}

func (a *Application) Start(ctx context.Context) error {
	if err := a.initConfig(); err != nil {
		return fmt.Errorf("init config: %w", err)
	}
	if err := a.initLogger(); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if err := a.initDatabase(ctx); err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	if err := a.initService(); err != nil {
		return fmt.Errorf("init service: %w", err)
	}
	a.initRouter()
	a.startHTTPServer(ctx)

	a.logger.Info("Application started successfully")

	return nil
}

// Wait blocks until ctx is done or the HTTP server fails, then shuts everything down.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	defer cancel()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutdown signal received, starting graceful shutdown...")
	case <-a.groupCtx.Done():
		a.logger.Info("HTTP server stopped, starting graceful shutdown...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.router.Shutdown(shutdownCtx); err != nil {
		a.logger.Errorf("HTTP server shutdown error: %v", err)
	}

	err := a.group.Wait()

	if a.db != nil {
		a.db.Close()
		a.logger.Info("Database connections closed")
	}

	_ = a.logger.Sync()
	a.logger.Info("Graceful shutdown completed")

	return err
}

func (a *Application) initConfig() error {
	cfg, err := config.ParseConfig("")
	if err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

func (a *Application) initLogger() error {
	log, err := NewLogger(a.cfg.Log.Level)
	if err != nil {
		return err
	}

	a.logger = log

	return nil
}

// initDatabase opens the pool only when snapshots are enabled.
func (a *Application) initDatabase(ctx context.Context) error {
	if !a.cfg.Snapshots.Enabled {
		a.logger.Info("Snapshots disabled, running without database")
		return nil
	}

	a.db = pgprovider.NewProvider(a.logger, a.cfg.DB)

	if err := a.db.Open(ctx); err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	a.logger.Info("Database connection established")

	return nil
}

func (a *Application) initService() error {
	var (
		repository service.Repository
		transactor service.Transactor
	)
	if a.db != nil {
		repository = repo.NewRepository(a.db.DB(), a.logger, a.cfg.DB.QueryTimeoutSec)
		transactor = dbtx.NewTransactor(a.db.DB())
	}

	svc, err := NewVideoService(a.cfg, a.logger, repository, transactor)
	if err != nil {
		return err
	}

	a.service = svc
	return nil
}

func (a *Application) initRouter() {
	handler := handlers.NewHandler(a.service, a.logger)
	a.router = api.NewRouter(a.cfg, handler)
}

func (a *Application) startHTTPServer(ctx context.Context) {
	a.group, a.groupCtx = errgroup.WithContext(ctx)

	a.group.Go(func() error {
		a.logger.Infof("HTTP server listening on %s", a.cfg.HTTP.ListenAddr)

		if err := a.router.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf("HTTP server error: %v", err)
			return fmt.Errorf("http server: %w", err)
		}

		return nil
	})
}
