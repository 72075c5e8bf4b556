package tui

import "github.com/charmbracelet/lipgloss"

var (
	Aqua    = lipgloss.Color("#2EC4B6")
	Ink     = lipgloss.Color("#0B132B")
	Pearl   = lipgloss.Color("#F1F5F9")
	Muted   = lipgloss.Color("#64748B")
	Danger  = lipgloss.Color("#E53935")
	Success = lipgloss.Color("#8BC34A")
)

// moodColors maps the mood and ambiance colour tokens to terminal colours
var moodColors = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("#3B82F6"),
	"purple": lipgloss.Color("#A855F7"),
	"pink":   lipgloss.Color("#EC4899"),
	"red":    lipgloss.Color("#EF4444"),
	"cyan":   lipgloss.Color("#06B6D4"),
	"amber":  lipgloss.Color("#F59E0B"),
	"yellow": lipgloss.Color("#EAB308"),
	"green":  lipgloss.Color("#22C55E"),
	"orange": lipgloss.Color("#F97316"),
	"slate":  lipgloss.Color("#64748B"),
}

func tokenColor(token string) lipgloss.Color {
	if c, ok := moodColors[token]; ok {
		return c
	}
	return moodColors["slate"]
}

type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Panel    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Pearl).
			Background(Ink).
			Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Aqua),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Muted).Padding(0, 1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(Aqua),
		Muted:    lipgloss.NewStyle().Foreground(Muted),
		Error:    lipgloss.NewStyle().Foreground(Danger),
		Status:   lipgloss.NewStyle().Foreground(Success),
		Help:     lipgloss.NewStyle().Foreground(Muted).Italic(true),
	}
}
