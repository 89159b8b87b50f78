package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the queue browser.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Frame interior

	// Selection colors
	SelectionBg   string // Footer bar background
	SelectionText string // Footer bar text

	// Border colors
	Border      string // Frame border
	BorderFocus string // Dialog border

	// Text colors
	Text    string
	Accent  string // Title
	Warning string // Footer bar while a call is in flight
	Danger  string
	Info    string // Selected item lines
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	surface := lipgloss.Color(t.Surface)
	return Styles{
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)).
			Background(surface),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Background(surface).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(surface),

		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)).
			Background(surface).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		PendingFooter: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Warning)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		DialogBorder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.Background)),

		DialogText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Background(lipgloss.Color(t.Background)).
			Bold(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Border        lipgloss.Style
	Title         lipgloss.Style
	Text          lipgloss.Style
	Highlight     lipgloss.Style
	Footer        lipgloss.Style
	PendingFooter lipgloss.Style

	DialogBorder lipgloss.Style
	DialogText   lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1

		SelectionBg:   "#cdcecf", // fg1
		SelectionText: "#131a24", // bg0

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Accent:  "#63cdcf", // cyan
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3

		SelectionBg:   "#DCD7BA", // fujiWhite
		SelectionText: "#16161D", // sumiInk0

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Accent:  "#7FB4CA", // springBlue
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900

		SelectionBg:   "#f8fafc", // slate-50
		SelectionText: "#020617", // slate-950

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Accent:  "#22d3ee", // cyan-400
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500
	}
}
