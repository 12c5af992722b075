package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mca/internal/api"
	"mca/internal/config"
	"mca/internal/payback"
	"mca/internal/rollup"
	"mca/internal/worker"
	"mca/pkg/controller"
	"mca/pkg/logger"
)

func setupServer(ctx context.Context, cfg *config.Config, storage controller.Pinger) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{Storage: storage}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the ops server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			// the ops server installs the otel meter provider used by the services
			stopWebserver := setupServer(ctx, cfg, strg)

			cal := loadCalendar(ctx, cfg)
			services := worker.Services{
				Payback: payback.New(strg, getNotifier(cfg), payback.NewOptions(cfg, cal)),
				Rollup:  rollup.New(strg, rollup.NewOptions(cfg, cal)),
			}

			workerOptions, err := worker.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "invalid worker config", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, strg.Pool, services, workerOptions)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers gracefully", zap.Error(err))
			}

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
