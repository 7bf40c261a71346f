// Package server wires the credkeeper server together: it picks the storage
// backend, builds the services and runs the HTTP API until a termination
// signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/server/config"
	"github.com/dmitrijs2005/credkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/credkeeper/internal/server/services"
)

// connectTimeout bounds the initial connection, ping and migrations.
const connectTimeout = 15 * time.Second

// newRepoManager is a seam for tests.
var newRepoManager = repomanager.New

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	userService *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	m, err := openStorage(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config:      c,
		logger:      logger,
		repomanager: m,
		userService: services.NewUserService(m, logger),
	}, nil
}

// openStorage connects to the configured backend and migrates it. In
// development mode a failure is logged and an unavailable manager is used
// so the server still starts.
func openStorage(ctx context.Context, c *config.Config, logger logging.Logger) (repomanager.RepositoryManager, error) {
	if c.CIMode {
		logger.Info(ctx, "CI mode, skipping database connection")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	m, err := newRepoManager(ctx, c)
	if err == nil {
		if err = m.RunMigrations(ctx); err != nil {
			_ = m.Close(ctx)
			err = fmt.Errorf("migrations: %w", err)
		}
	}

	if err != nil {
		if c.DevelopmentMode {
			logger.Warn(ctx, "storage unavailable, continuing in development mode",
				"storage", c.EffectiveStorage(), "error", err)
			return repomanager.NewUnavailable(err), nil
		}
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	logger.Info(ctx, "storage ready", "storage", c.EffectiveStorage())
	return m, nil
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

// Run serves HTTP until ctx is cancelled or a termination signal arrives,
// then closes the storage connection.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService,
		app.config.CORSOrigin, app.config.ShutdownTimeout)

	runErr := s.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "http server failed", "error", runErr)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()
	if err := app.repomanager.Close(closeCtx); err != nil {
		app.logger.Error(ctx, "storage close failed", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
