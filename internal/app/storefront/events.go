package storefront

import (
	"time"

	"github.com/YelzhanWeb/aquave/internal/domain"
	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

// eventListener turns session callbacks into broker events
type eventListener struct {
	sessionID string
	emit      func(interfaces.StorefrontEvent)
	now       func() time.Time
}

func newEventListener(sessionID string, emit func(interfaces.StorefrontEvent), now func() time.Time) *eventListener {
	return &eventListener{sessionID: sessionID, emit: emit, now: now}
}

func (l *eventListener) send(ev interfaces.StorefrontEvent) {
	ev.SessionID = l.sessionID
	ev.Timestamp = l.now().UTC()
	l.emit(ev)
}

func (l *eventListener) MoodSelected(mood domain.Mood) {
	l.send(interfaces.StorefrontEvent{Type: interfaces.EventMoodSelected, MoodID: mood.ID})
}

func (l *eventListener) DrinkSelected(drink domain.Drink) {
	l.send(interfaces.StorefrontEvent{Type: interfaces.EventDrinkSelected, DrinkID: drink.ID})
}

func (l *eventListener) AddedToCart(drinkID string) {
	l.send(interfaces.StorefrontEvent{Type: interfaces.EventAddedToCart, DrinkID: drinkID})
}

func (l *eventListener) FavoriteToggled(drinkID string, favorite bool) {
	l.send(interfaces.StorefrontEvent{Type: interfaces.EventFavoriteToggled, DrinkID: drinkID, Favorite: &favorite})
}

func (l *eventListener) Shared(drinkID string) {
	l.send(interfaces.StorefrontEvent{Type: interfaces.EventShared, DrinkID: drinkID})
}

func (l *eventListener) OrderCompleted(conf domain.Confirmation, quote domain.Quote) {
	l.send(interfaces.StorefrontEvent{
		Type:        interfaces.EventOrderCompleted,
		OrderNumber: conf.Number,
		Total:       quote.Total.StringFixed(2),
	})
}

func (l *eventListener) LightingChanged(level int) {
	l.send(interfaces.StorefrontEvent{Type: interfaces.EventLightingChanged, Value: &level})
}

func (l *eventListener) MusicVolumeChanged(level int) {
	l.send(interfaces.StorefrontEvent{Type: interfaces.EventMusicVolumeChanged, Value: &level})
}

func (l *eventListener) GenreChanged(genre string) {
	l.send(interfaces.StorefrontEvent{Type: interfaces.EventGenreChanged, Genre: genre})
}

func (l *eventListener) SmartLightingToggled(enabled bool) {
	l.send(interfaces.StorefrontEvent{Type: interfaces.EventSmartLightingToggled, Enabled: &enabled})
}

func (l *eventListener) MusicToggled(enabled bool) {
	l.send(interfaces.StorefrontEvent{Type: interfaces.EventMusicToggled, Enabled: &enabled})
}
