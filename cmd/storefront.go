package main

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
	"github.com/spf13/cobra"

	"github.com/YelzhanWeb/aquave/internal/adapter/logger"
	"github.com/YelzhanWeb/aquave/internal/app/scheduler"
	"github.com/YelzhanWeb/aquave/internal/app/storefront"
	"github.com/YelzhanWeb/aquave/internal/config"

	httpAdapter "github.com/YelzhanWeb/aquave/internal/adapter/http"
)

const shutdownTimeout = 10 * time.Second

func newStorefrontCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Serve the storefront HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, config.BindFlag("storefront.port", cmd.Flags().Lookup("port")))
			if err != nil {
				return err
			}
			lgr, err := logger.NewWithLevel("storefront", cfg.Logging.Level)
			if err != nil {
				return err
			}
			return runStorefront(cmd.Context(), cfg, lgr)
		},
	}
	cmd.Flags().Int("port", 3000, "HTTP port")
	return cmd
}

func runStorefront(ctx context.Context, cfg *config.Config, lgr logger.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	catalogRepo, release, err := openCatalog(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer release()

	publisher, err := openPublisher(cfg, "aquave-storefront", lgr)
	if err != nil {
		return err
	}
	defer closePublisher(publisher, lgr)

	service := storefront.NewService(catalogRepo, publisher, lgr, scheduler.New(), serviceSettings(cfg.Storefront))
	if err := service.Start(ctx); err != nil {
		return err
	}

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(service, lgr, httpAdapter.RouterConfig{
		AllowedOrigins: cfg.Storefront.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Storefront.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("Storefront started on port %d", cfg.Storefront.Port), "startup", map[string]interface{}{
		"port":           cfg.Storefront.Port,
		"catalog_source": cfg.Catalog.Source,
		"events_driver":  cfg.Events.Driver,
	})

	// Graceful shutdown
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		select {
		case <-sigint:
		case <-ctx.Done():
		}

		lgr.Info("shutdown_initiated", "Shutting down Storefront", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during HTTP shutdown", "shutdown", nil, err)
		}
		if err := service.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error draining storefront events", "shutdown", nil, err)
		}
	}()

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
		cancel()
		<-stopped
		return err
	}
	<-stopped
	return nil
}
