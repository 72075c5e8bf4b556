package interfaces

import (
	"context"
	"time"
)

type EventType string

const (
	EventMoodSelected         EventType = "mood_selected"
	EventDrinkSelected        EventType = "drink_selected"
	EventAddedToCart          EventType = "added_to_cart"
	EventFavoriteToggled      EventType = "favorite_toggled"
	EventShared               EventType = "shared"
	EventOrderCompleted       EventType = "order_completed"
	EventLightingChanged      EventType = "lighting_changed"
	EventMusicVolumeChanged   EventType = "music_volume_changed"
	EventGenreChanged         EventType = "genre_changed"
	EventSmartLightingToggled EventType = "smart_lighting_toggled"
	EventMusicToggled         EventType = "music_toggled"
)

// StorefrontEvent is the broker message for every fire-and-forget callback
type StorefrontEvent struct {
	Type        EventType `json:"type"`
	SessionID   string    `json:"session_id"`
	MoodID      string    `json:"mood_id,omitempty"`
	DrinkID     string    `json:"drink_id,omitempty"`
	Favorite    *bool     `json:"favorite,omitempty"`
	OrderNumber string    `json:"order_number,omitempty"`
	Total       string    `json:"total,omitempty"`
	Value       *int      `json:"value,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	Enabled     *bool     `json:"enabled,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// RoutingKey is the topic exchange key, storefront.<type>
func (e StorefrontEvent) RoutingKey() string {
	return "storefront." + string(e.Type)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event StorefrontEvent) error
	Close() error
}

type EventConsumer interface {
	ConsumeEvents(ctx context.Context, handler EventHandler) error
}

type EventHandler func(ctx context.Context, body []byte) error
