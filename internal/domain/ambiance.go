package domain

// AmbianceSettings holds the smart lighting and music controls
type AmbianceSettings struct {
	LightingIntensity    int    `json:"lighting_intensity"`
	MusicVolume          int    `json:"music_volume"`
	SmartLightingEnabled bool   `json:"smart_lighting_enabled"`
	MusicEnabled         bool   `json:"music_enabled"`
	Genre                string `json:"genre,omitempty"`
}

func DefaultAmbianceSettings() AmbianceSettings {
	return AmbianceSettings{
		LightingIntensity:    70,
		MusicVolume:          50,
		SmartLightingEnabled: true,
		MusicEnabled:         true,
	}
}

// ClampLevel pins a slider value into [0, 100]
func ClampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Keyed by mood name, like the rest of the ambiance panel.
var (
	moodGenres = map[string][]string{
		"Relaxation": {"Ambient", "Classical", "Jazz"},
		"Party":      {"Dance", "Electronic", "Hip-Hop"},
		"Date Night": {"R&B", "Jazz", "Acoustic"},
		"Focus":      {"Lo-fi", "Classical", "Ambient"},
		"Energetic":  {"Rock", "Pop", "Electronic"},
	}
	moodBackgrounds = map[string]string{
		"Relaxation": "blue",
		"Party":      "purple",
		"Date Night": "red",
		"Focus":      "green",
		"Energetic":  "orange",
	}
	fallbackGenres     = []string{"Jazz", "Pop", "Rock"}
	fallbackBackground = "slate"
)

// GenresForMood returns the recommended genres for a mood name
func GenresForMood(mood string) []string {
	if g, ok := moodGenres[mood]; ok {
		return append([]string(nil), g...)
	}
	return append([]string(nil), fallbackGenres...)
}

// BackgroundForMood returns the ambiance panel colour for a mood name
func BackgroundForMood(mood string) string {
	if c, ok := moodBackgrounds[mood]; ok {
		return c
	}
	return fallbackBackground
}
