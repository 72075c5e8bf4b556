package ambiance

import (
	"fmt"

	"github.com/YelzhanWeb/aquave/internal/domain"
	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

// Panel holds the smart lighting and music controls for the selected mood
type Panel struct {
	mood     string
	settings domain.AmbianceSettings
	listener interfaces.Listener
}

// New scopes the panel to a mood name. An empty name uses the fallbacks.
func New(mood string, listener interfaces.Listener) *Panel {
	return &Panel{
		mood:     mood,
		settings: domain.DefaultAmbianceSettings(),
		listener: interfaces.OrNop(listener),
	}
}

// SetMood rescopes the panel. Settings survive a mood change; a genre that
// the new mood does not suggest is dropped.
func (p *Panel) SetMood(mood string) {
	p.mood = mood
	if p.settings.Genre != "" && !contains(domain.GenresForMood(mood), p.settings.Genre) {
		p.settings.Genre = ""
	}
}

func (p *Panel) Settings() domain.AmbianceSettings {
	return p.settings
}

func (p *Panel) SetLighting(level int) int {
	p.settings.LightingIntensity = domain.ClampLevel(level)
	p.listener.LightingChanged(p.settings.LightingIntensity)
	return p.settings.LightingIntensity
}

func (p *Panel) SetMusicVolume(level int) int {
	p.settings.MusicVolume = domain.ClampLevel(level)
	p.listener.MusicVolumeChanged(p.settings.MusicVolume)
	return p.settings.MusicVolume
}

func (p *Panel) SetSmartLighting(enabled bool) {
	p.settings.SmartLightingEnabled = enabled
	p.listener.SmartLightingToggled(enabled)
}

func (p *Panel) SetMusic(enabled bool) {
	p.settings.MusicEnabled = enabled
	p.listener.MusicToggled(enabled)
}

// SetGenre picks one of the genres suggested for the current mood
func (p *Panel) SetGenre(genre string) error {
	if !contains(domain.GenresForMood(p.mood), genre) {
		return fmt.Errorf("%w: %q for %q", domain.ErrInvalidGenre, genre, p.mood)
	}
	p.settings.Genre = genre
	p.listener.GenreChanged(genre)
	return nil
}

type State struct {
	Mood       string                  `json:"mood"`
	Background string                  `json:"background"`
	Genres     []string                `json:"genres"`
	Settings   domain.AmbianceSettings `json:"settings"`
}

func (p *Panel) State() State {
	return State{
		Mood:       p.mood,
		Background: domain.BackgroundForMood(p.mood),
		Genres:     domain.GenresForMood(p.mood),
		Settings:   p.settings,
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
