package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/YelzhanWeb/aquave/internal/adapter/logger"
	"github.com/YelzhanWeb/aquave/internal/adapter/tui"
	"github.com/YelzhanWeb/aquave/internal/app/scheduler"
	"github.com/YelzhanWeb/aquave/internal/app/storefront"
	"github.com/YelzhanWeb/aquave/internal/config"
)

func newBrowseCmd() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the storefront in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// the terminal belongs to the UI, so logs go to a file
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()

			lgr, err := logger.NewWithWriter("browse", cfg.Logging.Level, f)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runBrowse(ctx, cfg, lgr)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "aquave-browse.log", "where the terminal storefront writes its logs")
	return cmd
}

func runBrowse(ctx context.Context, cfg *config.Config, lgr logger.Logger) error {
	catalogRepo, release, err := openCatalog(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer release()

	publisher, err := openPublisher(cfg, "aquave-browse", lgr)
	if err != nil {
		return err
	}
	defer closePublisher(publisher, lgr)

	// timers fire on the UI loop instead of their own goroutines
	queue := scheduler.NewQueued(scheduler.New())

	settings := serviceSettings(cfg.Storefront)
	settings.ReapInterval = 0
	service := storefront.NewService(catalogRepo, publisher, lgr, queue, settings)
	if err := service.Start(ctx); err != nil {
		queue.Close()
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := service.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error draining storefront events", "shutdown", nil, err)
		}
	}()

	session := service.CreateSession(ctx)
	lgr.Info("service_started", "Terminal storefront started", "startup", map[string]interface{}{
		"session_id": session.ID(),
	})
	return tui.Run(ctx, session, queue)
}
