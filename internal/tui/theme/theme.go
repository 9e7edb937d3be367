// Package theme defines color themes for the ankadash TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	Border       lipgloss.Color // Subtle borders
	BorderBright lipgloss.Color // Prominent borders (cards, focus)
	TextDim      lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted    lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary  lipgloss.Color // Primary content text
	Accent       lipgloss.Color // Primary accent (active tab, highlights)
	AccentBright lipgloss.Color // Brighter accent for emphasis
	Green        lipgloss.Color
	Red          lipgloss.Color
	Yellow       lipgloss.Color
	Cyan         lipgloss.Color
}

// Active is the currently selected theme.
var Active = SlateDark

// SlateDark matches the web dashboard's dark slate surfaces with
// emerald accents.
var SlateDark = Theme{
	Name:         "slate-dark",
	Background:   lipgloss.Color("#0F172A"),
	Surface:      lipgloss.Color("#1E293B"),
	Border:       lipgloss.Color("#334155"),
	BorderBright: lipgloss.Color("#475569"),
	TextDim:      lipgloss.Color("#475569"),
	TextMuted:    lipgloss.Color("#94A3B8"),
	TextPrimary:  lipgloss.Color("#E2E8F0"),
	Accent:       lipgloss.Color("#10B981"),
	AccentBright: lipgloss.Color("#34D399"),
	Green:        lipgloss.Color("#22C55E"),
	Red:          lipgloss.Color("#EF4444"),
	Yellow:       lipgloss.Color("#EAB308"),
	Cyan:         lipgloss.Color("#06B6D4"),
}

// SlateLight is the same palette inverted for light terminals.
var SlateLight = Theme{
	Name:         "slate-light",
	Background:   lipgloss.Color("#F8FAFC"),
	Surface:      lipgloss.Color("#F1F5F9"),
	Border:       lipgloss.Color("#CBD5E1"),
	BorderBright: lipgloss.Color("#94A3B8"),
	TextDim:      lipgloss.Color("#94A3B8"),
	TextMuted:    lipgloss.Color("#64748B"),
	TextPrimary:  lipgloss.Color("#0F172A"),
	Accent:       lipgloss.Color("#059669"),
	AccentBright: lipgloss.Color("#10B981"),
	Green:        lipgloss.Color("#16A34A"),
	Red:          lipgloss.Color("#DC2626"),
	Yellow:       lipgloss.Color("#CA8A04"),
	Cyan:         lipgloss.Color("#0891B2"),
}

// Terminal uses ANSI 16 colors only, for maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	Border:       lipgloss.Color("8"),
	BorderBright: lipgloss.Color("7"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("2"),
	AccentBright: lipgloss.Color("10"),
	Green:        lipgloss.Color("2"),
	Red:          lipgloss.Color("1"),
	Yellow:       lipgloss.Color("3"),
	Cyan:         lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{SlateDark, SlateLight, Terminal}

// ByName returns a theme by its name, defaulting to SlateDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return SlateDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
