package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"order-time-checker/cmd/bootstrap"
	"order-time-checker/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}
}

func newApp() *fx.App {
	return fx.New(
		bootstrap.Module,
		fx.Provide(
			newEngine,
		),
		fx.Invoke(
			startServer,
		),
	)
}

// newEngine builds the engine with strict JSON decoding set before any route is
// registered or served.
func newEngine() *gin.Engine {
	gin.EnableJsonDecoderDisallowUnknownFields()
	return gin.New()
}

func runServer(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	app := newApp()

	if err := app.Start(ctx); err != nil {
		slog.Error("failed to start application", "error", err)
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	slog.Info("application stopped")
	return nil
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			stopCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(stopCtx)
		},
	})
}
