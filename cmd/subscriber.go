package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/YelzhanWeb/aquave/internal/adapter/logger"
	"github.com/YelzhanWeb/aquave/internal/adapter/rabbitmq"
	"github.com/YelzhanWeb/aquave/internal/config"

	amqpAdapter "github.com/YelzhanWeb/aquave/internal/adapter/amqp"
)

func newSubscriberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event-subscriber",
		Short: "Print storefront events published to RabbitMQ",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, config.BindFlag("rabbitmq.prefetch", cmd.Flags().Lookup("prefetch")))
			if err != nil {
				return err
			}
			// stdout carries the event lines
			lgr, err := logger.NewWithWriter("event-subscriber", cfg.Logging.Level, os.Stderr)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runSubscriber(ctx, cfg, lgr)
		},
	}
	cmd.Flags().Int("prefetch", 10, "RabbitMQ prefetch count")
	return cmd
}

func runSubscriber(ctx context.Context, cfg *config.Config, lgr logger.Logger) error {
	conn, err := rabbitmq.Connect(cfg.RabbitMQ, "aquave-event-subscriber")
	if err != nil {
		return err
	}
	defer conn.Close()

	consumer := rabbitmq.NewConsumer(conn, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Prefetch, lgr)
	handler := amqpAdapter.NewEventHandler(lgr, os.Stdout)

	lgr.Info("service_started", "Event Subscriber started", "startup", map[string]interface{}{
		"exchange": cfg.RabbitMQ.Exchange,
		"binding":  rabbitmq.BindingKey,
	})

	err = consumer.ConsumeEvents(ctx, handler.HandleEvent)
	if errors.Is(err, context.Canceled) {
		lgr.Info("shutdown_initiated", "Shutting down Event Subscriber", "shutdown", nil)
		return nil
	}
	if err != nil {
		lgr.Error("consumer_error", "Error consuming events", "runtime", nil, err)
	}
	return err
}
