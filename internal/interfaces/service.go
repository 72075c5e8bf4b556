package interfaces

import (
	"github.com/YelzhanWeb/aquave/internal/domain"
)

// Listener receives the storefront's fire-and-forget callbacks. Calls are
// made while the session is locked; implementations must not call back
// into the session.
type Listener interface {
	MoodSelected(mood domain.Mood)
	DrinkSelected(drink domain.Drink)
	AddedToCart(drinkID string)
	FavoriteToggled(drinkID string, favorite bool)
	Shared(drinkID string)
	OrderCompleted(confirmation domain.Confirmation, quote domain.Quote)

	LightingChanged(level int)
	MusicVolumeChanged(level int)
	GenreChanged(genre string)
	SmartLightingToggled(enabled bool)
	MusicToggled(enabled bool)
}

// NopListener ignores every callback. Panels use it when the caller passes nil.
type NopListener struct{}

func (NopListener) MoodSelected(domain.Mood)                         {}
func (NopListener) DrinkSelected(domain.Drink)                       {}
func (NopListener) AddedToCart(string)                               {}
func (NopListener) FavoriteToggled(string, bool)                     {}
func (NopListener) Shared(string)                                    {}
func (NopListener) OrderCompleted(domain.Confirmation, domain.Quote) {}
func (NopListener) LightingChanged(int)                              {}
func (NopListener) MusicVolumeChanged(int)                           {}
func (NopListener) GenreChanged(string)                              {}
func (NopListener) SmartLightingToggled(bool)                        {}
func (NopListener) MusicToggled(bool)                                {}

// OrNop returns l, or NopListener when l is nil
func OrNop(l Listener) Listener {
	if l == nil {
		return NopListener{}
	}
	return l
}
