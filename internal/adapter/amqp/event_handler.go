package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/YelzhanWeb/aquave/internal/adapter/logger"
	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

// EventHandler prints one line per storefront event for the subscriber
type EventHandler struct {
	logger logger.Logger
	out    io.Writer
}

func NewEventHandler(logger logger.Logger, out io.Writer) *EventHandler {
	return &EventHandler{
		logger: logger,
		out:    out,
	}
}

func (h *EventHandler) HandleEvent(ctx context.Context, body []byte) error {
	var ev interfaces.StorefrontEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse storefront event", "", nil, err)
		return err
	}
	if ev.Type == "" {
		err := fmt.Errorf("event without type from session %q", ev.SessionID)
		h.logger.Error("message_parse_failed", "Failed to parse storefront event", "", nil, err)
		return err
	}

	h.logger.Debug("event_received", fmt.Sprintf("Received %s from session %s", ev.Type, ev.SessionID),
		"", map[string]interface{}{
			"session_id": ev.SessionID,
			"type":       string(ev.Type),
		})

	_, err := fmt.Fprintf(h.out, "[%s] session %s: %s\n",
		ev.Timestamp.UTC().Format("15:04:05"), ev.SessionID, Describe(ev))
	return err
}

// Describe renders the event payload for humans
func Describe(ev interfaces.StorefrontEvent) string {
	switch ev.Type {
	case interfaces.EventMoodSelected:
		return fmt.Sprintf("picked mood %s", ev.MoodID)
	case interfaces.EventDrinkSelected:
		return fmt.Sprintf("selected %s", ev.DrinkID)
	case interfaces.EventAddedToCart:
		return fmt.Sprintf("added %s to cart", ev.DrinkID)
	case interfaces.EventFavoriteToggled:
		return fmt.Sprintf("set favorite on %s to %t", ev.DrinkID, deref(ev.Favorite))
	case interfaces.EventShared:
		return fmt.Sprintf("shared %s", ev.DrinkID)
	case interfaces.EventOrderCompleted:
		return fmt.Sprintf("completed order %s for $%s", ev.OrderNumber, ev.Total)
	case interfaces.EventLightingChanged:
		return fmt.Sprintf("set lighting to %d%%", derefInt(ev.Value))
	case interfaces.EventMusicVolumeChanged:
		return fmt.Sprintf("set music volume to %d%%", derefInt(ev.Value))
	case interfaces.EventGenreChanged:
		return fmt.Sprintf("switched genre to %s", ev.Genre)
	case interfaces.EventSmartLightingToggled:
		return fmt.Sprintf("turned smart lighting %s", onOff(deref(ev.Enabled)))
	case interfaces.EventMusicToggled:
		return fmt.Sprintf("turned music %s", onOff(deref(ev.Enabled)))
	default:
		return string(ev.Type)
	}
}

func deref(b *bool) bool {
	return b != nil && *b
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
