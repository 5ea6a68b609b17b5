// Package app wires configuration, storage, services and the HTTP router
// into a runnable application. BuildRouter is shared by both deployment
// forms; App adds the listen/shutdown lifecycle of the always-on server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/blogcrm/internal/awsx"
	"github.com/dmitrijs2005/blogcrm/internal/config"
	"github.com/dmitrijs2005/blogcrm/internal/httpapi"
	"github.com/dmitrijs2005/blogcrm/internal/logging"
	"github.com/dmitrijs2005/blogcrm/internal/repositories/repomanager"
	"github.com/dmitrijs2005/blogcrm/internal/services"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	router  *gin.Engine
	cleanup func() error
}

// NewApp builds a runnable server-form application from the configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewDefault()

	router, cleanup, err := BuildRouter(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{config: cfg, logger: logger, router: router, cleanup: cleanup}, nil
}

// BuildRouter wires the selected storage driver, the AWS clients and the
// services into a ready gin engine. The returned cleanup function releases
// storage resources and may be nil-safe to call once.
func BuildRouter(ctx context.Context, cfg *config.Config, logger logging.Logger) (*gin.Engine, func() error, error) {
	awsCfg, err := awsx.Load(ctx, awsx.Options{
		Region:      cfg.Region,
		EndpointURL: cfg.AWSEndpointURL,
		AccessKey:   cfg.AWSAccessKey,
		SecretKey:   cfg.AWSSecretKey,
	})
	if err != nil {
		return nil, nil, err
	}

	var repos repomanager.RepositoryManager
	cleanup := func() error { return nil }

	switch cfg.StorageDriver {
	case config.DriverDynamo:
		client := awsx.NewDynamoClient(awsCfg, cfg.AWSEndpointURL)
		repos = repomanager.NewDynamoRepositoryManager(client, cfg.TableName)

	case config.DriverPostgres:
		pg, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("db init error: %w", err)
		}
		if err := pg.RunMigrations(ctx); err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("db migration error: %w", err)
		}
		repos = pg
		cleanup = pg.Close

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	postService := services.NewPostService(repos.Posts())
	leadService := services.NewLeadService(repos.Leads())
	mediaService := services.NewMediaService(
		awsx.NewS3Client(awsCfg, cfg.AWSEndpointURL),
		cfg.MediaBucket, cfg.MediaBaseURL, cfg.MediaPrefix,
	)
	notifier := services.NewLeadNotifier(
		awsx.NewSNSClient(awsCfg, cfg.AWSEndpointURL),
		cfg.LeadsTopicARN, logger,
	)

	handlers := httpapi.NewHandlers(postService, leadService, mediaService, notifier, logger, cfg.Region)
	router := httpapi.NewRouter(handlers, httpapi.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins(),
		AdminJWTSecret: cfg.AdminJWTSecret,
	})
	return router, cleanup, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until the context is canceled or a termination signal
// arrives, then shuts the listener down gracefully and releases storage.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{Addr: app.config.Addr, Handler: app.router}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	app.logger.Info(ctx, "starting server",
		"addr", app.config.Addr,
		"driver", app.config.StorageDriver,
	)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.cleanup()
			return err
		}
	case <-ctx.Done():
		app.logger.Info(ctx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}

	return app.cleanup()
}
