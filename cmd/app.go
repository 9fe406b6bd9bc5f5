package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/krishivishwa/storefront/config"
	"github.com/krishivishwa/storefront/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App The storefront server.
type App struct {
	config     *config.Config
	components *components
}

// NewApp Wire the application from configuration.
func NewApp(cfg *config.Config) (*App, error) {
	comps, err := build(cfg)
	if err != nil {
		return nil, err
	}
	return &App{
		config:     cfg,
		components: comps,
	}, nil
}

// Run Start the HTTP server and the content refreshers, then block until
// an interrupt triggers graceful shutdown.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for _, r := range a.components.refreshers {
		go func() {
			if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("content refresher stopped", zap.Error(err))
			}
		}()
	}

	server := &http.Server{
		Addr:         ":" + a.config.Server.Port,
		Handler:      a.components.router.GetEngine(),
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("port", a.config.Server.Port),
			zap.String("env", a.config.App.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}

	for _, closeFn := range a.components.closers {
		if err := closeFn(); err != nil {
			logger.Warn("failed to close resource", zap.Error(err))
		}
	}

	logger.Info("server stopped")
	return nil
}

// GetEngine Get the Gin engine (used in tests).
func (a *App) GetEngine() *gin.Engine {
	return a.components.router.GetEngine()
}
