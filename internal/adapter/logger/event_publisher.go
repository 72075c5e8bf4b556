package logger

import (
	"context"
	"fmt"

	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

type eventPublisher struct {
	logger Logger
}

// NewEventPublisher writes storefront events to the log instead of a broker
func NewEventPublisher(logger Logger) interfaces.EventPublisher {
	return &eventPublisher{logger: logger}
}

func (p *eventPublisher) PublishEvent(ctx context.Context, ev interfaces.StorefrontEvent) error {
	details := map[string]interface{}{
		"type":       string(ev.Type),
		"session_id": ev.SessionID,
	}
	for key, value := range map[string]string{
		"mood_id":      ev.MoodID,
		"drink_id":     ev.DrinkID,
		"order_number": ev.OrderNumber,
		"total":        ev.Total,
		"genre":        ev.Genre,
	} {
		if value != "" {
			details[key] = value
		}
	}
	if ev.Favorite != nil {
		details["favorite"] = *ev.Favorite
	}
	if ev.Value != nil {
		details["value"] = *ev.Value
	}
	if ev.Enabled != nil {
		details["enabled"] = *ev.Enabled
	}

	p.logger.Info("storefront_event", fmt.Sprintf("Storefront event %s", ev.Type), RequestID(ctx), details)
	return nil
}

func (p *eventPublisher) Close() error { return nil }
