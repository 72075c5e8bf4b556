package domain

// Mood is one of the fixed entry points of the storefront
type Mood struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ColorToken  string `json:"color"`
}

// DefaultMoods returns the six mood options in display order
func DefaultMoods() []Mood {
	return []Mood{
		{ID: "relaxation", Name: "Relaxation", Description: "Unwind and destress with calming drink options", ColorToken: "blue"},
		{ID: "party", Name: "Party", Description: "Energetic and fun drinks for celebrations", ColorToken: "purple"},
		{ID: "date-night", Name: "Date Night", Description: "Romantic and sophisticated options for two", ColorToken: "pink"},
		{ID: "refreshing", Name: "Refreshing", Description: "Cool and revitalizing drinks for hot days", ColorToken: "cyan"},
		{ID: "energizing", Name: "Energizing", Description: "Boost your energy with these invigorating options", ColorToken: "amber"},
		{ID: "special", Name: "Special Occasion", Description: "Premium drinks for memorable moments", ColorToken: "yellow"},
	}
}

// FindMood looks a mood up by id
func FindMood(moods []Mood, id string) (Mood, bool) {
	for _, m := range moods {
		if m.ID == id {
			return m, true
		}
	}
	return Mood{}, false
}
