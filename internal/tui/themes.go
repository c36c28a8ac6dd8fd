package tui

import "github.com/charmbracelet/lipgloss"

// Theme maps board states to colors
type Theme struct {
	Name   string
	Bar    lipgloss.Color // resting elements
	Active lipgloss.Color // positions under comparison
	Moved  lipgloss.Color // positions just written
	Sorted lipgloss.Color // positions settled in final order
	Window lipgloss.Color // active subrange
	Marker lipgloss.Color // scan cursor, pivot, minimum candidate
	Found  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Error  lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Bar:    lipgloss.Color("#444466"),
		Active: lipgloss.Color("#00ffff"),
		Moved:  lipgloss.Color("#ff00ff"),
		Sorted: lipgloss.Color("#00ff88"),
		Window: lipgloss.Color("#8888ff"),
		Marker: lipgloss.Color("#ffff00"),
		Found:  lipgloss.Color("#00ff00"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666688"),
		Error:  lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Bar:    lipgloss.Color("#005500"),
		Active: lipgloss.Color("#88ff88"),
		Moved:  lipgloss.Color("#ffff00"),
		Sorted: lipgloss.Color("#00ff00"),
		Window: lipgloss.Color("#00aa00"),
		Marker: lipgloss.Color("#ccffcc"),
		Found:  lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Bar:    lipgloss.Color("#555555"),
		Active: lipgloss.Color("#ffffff"),
		Moved:  lipgloss.Color("#0088ff"),
		Sorted: lipgloss.Color("#cccccc"),
		Window: lipgloss.Color("#888888"),
		Marker: lipgloss.Color("#ffffff"),
		Found:  lipgloss.Color("#00ff00"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Bar:    lipgloss.Color("#004466"),
		Active: lipgloss.Color("#00a8cc"),
		Moved:  lipgloss.Color("#ffd700"),
		Sorted: lipgloss.Color("#00ff88"),
		Window: lipgloss.Color("#0077be"),
		Marker: lipgloss.Color("#e0f0ff"),
		Found:  lipgloss.Color("#00ff88"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Error:  lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Bar:    lipgloss.Color("#5c3a5e"),
		Active: lipgloss.Color("#feca57"),
		Moved:  lipgloss.Color("#ff9ff3"),
		Sorted: lipgloss.Color("#5fd068"),
		Window: lipgloss.Color("#ff6b6b"),
		Marker: lipgloss.Color("#fff5f5"),
		Found:  lipgloss.Color("#5fd068"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Error:  lipgloss.Color("#ff4757"),
	}

	// Default theme
	CurrentTheme = ThemeCyberpunk

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
