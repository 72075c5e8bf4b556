package main

import (
	"context"
	"fmt"

	"github.com/YelzhanWeb/aquave/internal/adapter/file"
	"github.com/YelzhanWeb/aquave/internal/adapter/kafka"
	"github.com/YelzhanWeb/aquave/internal/adapter/logger"
	"github.com/YelzhanWeb/aquave/internal/adapter/memory"
	"github.com/YelzhanWeb/aquave/internal/adapter/postgres"
	"github.com/YelzhanWeb/aquave/internal/adapter/rabbitmq"
	"github.com/YelzhanWeb/aquave/internal/app/storefront"
	"github.com/YelzhanWeb/aquave/internal/config"
	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

// openCatalog returns the configured catalog source and a func releasing it
func openCatalog(ctx context.Context, cfg *config.Config, lgr logger.Logger) (interfaces.CatalogRepository, func(), error) {
	switch cfg.Catalog.Source {
	case "file":
		return file.NewCatalogRepository(cfg.Catalog.Path), func() {}, nil
	case "postgres":
		db, err := postgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
			"host":     cfg.Database.Host,
			"database": cfg.Database.Database,
		})
		return postgres.NewCatalogRepository(db), db.Close, nil
	default:
		return memory.NewCatalogRepository(), func() {}, nil
	}
}

// openPublisher returns nil for the none driver; name labels the broker connection
func openPublisher(cfg *config.Config, name string, lgr logger.Logger) (interfaces.EventPublisher, error) {
	switch cfg.Events.Driver {
	case "log":
		return logger.NewEventPublisher(lgr), nil
	case "rabbitmq":
		conn, err := rabbitmq.Connect(cfg.RabbitMQ, name)
		if err != nil {
			return nil, err
		}
		lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
			"host":     cfg.RabbitMQ.Host,
			"exchange": cfg.RabbitMQ.Exchange,
		})
		return rabbitmq.NewPublisher(conn, cfg.RabbitMQ.Exchange), nil
	case "kafka":
		p, err := kafka.NewPublisher(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		lgr.Info("kafka_connected", "Connected to Kafka", "startup", map[string]interface{}{
			"brokers": cfg.Kafka.Brokers,
			"topic":   cfg.Kafka.Topic,
		})
		return p, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}
}

func closePublisher(p interfaces.EventPublisher, lgr logger.Logger) {
	if p == nil {
		return
	}
	if err := p.Close(); err != nil {
		lgr.Error("shutdown_error", "Failed to close event publisher", "shutdown", nil, err)
	}
}

func serviceSettings(cfg config.StorefrontConfig) storefront.Settings {
	s := storefront.DefaultSettings()
	s.IdleTTL = cfg.SessionIdleTTL
	s.ReapInterval = cfg.ReapInterval
	s.AutoClose = cfg.AutoClose
	s.PreparationTick = cfg.PreparationTick
	s.EventBuffer = cfg.EventBuffer
	return s
}
