// Package theme defines the color palettes used by the dashboard and CLI.
package theme

import (
	"github.com/theirongolddev/atelier/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color roles used throughout the UI.
type Theme struct {
	Name          string
	Background    lipgloss.Color
	Surface       lipgloss.Color // card/panel backgrounds
	SurfaceHover  lipgloss.Color // selected row, active tab
	SurfaceBright lipgloss.Color
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // focused card
	TextDim       lipgloss.Color
	TextMuted     lipgloss.Color
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color
	Positive      lipgloss.Color // balance >= 0
	Negative      lipgloss.Color // balance < 0, errors
	Warn          lipgloss.Color

	// Per-category colors, used by badges and the breakdown chart.
	Income   lipgloss.Color
	Fixed    lipgloss.Color
	Variable lipgloss.Color
	Savings  lipgloss.Color
}

// Atelier is the default theme: burgundy and copper on warm paper tones.
var Atelier = Theme{
	Name:          "atelier",
	Background:    lipgloss.Color("#1A1212"),
	Surface:       lipgloss.Color("#231919"),
	SurfaceHover:  lipgloss.Color("#332424"),
	SurfaceBright: lipgloss.Color("#3F2D2D"),
	Border:        lipgloss.Color("#4A3636"),
	BorderAccent:  lipgloss.Color("#BF8B67"),
	TextDim:       lipgloss.Color("#6E5A5A"),
	TextMuted:     lipgloss.Color("#A89090"),
	TextPrimary:   lipgloss.Color("#F7EFEA"),
	Accent:        lipgloss.Color("#BF8B67"),
	AccentBright:  lipgloss.Color("#D9AA88"),
	Positive:      lipgloss.Color("#BF8B67"),
	Negative:      lipgloss.Color("#C24D4D"),
	Warn:          lipgloss.Color("#D9A441"),
	Income:        lipgloss.Color("#BF8B67"),
	Fixed:         lipgloss.Color("#A33B3B"),
	Variable:      lipgloss.Color("#9D5353"),
	Savings:       lipgloss.Color("#D9AA88"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Positive:      lipgloss.Color("#879A39"),
	Negative:      lipgloss.Color("#D14D41"),
	Warn:          lipgloss.Color("#DA702C"),
	Income:        lipgloss.Color("#879A39"),
	Fixed:         lipgloss.Color("#D14D41"),
	Variable:      lipgloss.Color("#DA702C"),
	Savings:       lipgloss.Color("#4385BE"),
}

// Terminal uses ANSI 16 colors only, for maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Positive:      lipgloss.Color("2"),
	Negative:      lipgloss.Color("1"),
	Warn:          lipgloss.Color("3"),
	Income:        lipgloss.Color("2"),
	Fixed:         lipgloss.Color("1"),
	Variable:      lipgloss.Color("3"),
	Savings:       lipgloss.Color("4"),
}

// Active is the currently selected theme.
var Active = Atelier

// All available themes.
var All = []Theme{Atelier, FlexokiDark, Terminal}

// ByName returns a theme by its name, defaulting to Atelier.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Atelier
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Next returns the name of the theme after name, wrapping around.
func Next(name string) string {
	for i, t := range All {
		if t.Name == name {
			return All[(i+1)%len(All)].Name
		}
	}
	return All[0].Name
}

// CategoryColor returns the active theme's color for c.
func CategoryColor(c model.Category) lipgloss.Color {
	t := Active
	switch c {
	case model.Income:
		return t.Income
	case model.Fixed:
		return t.Fixed
	case model.Variable:
		return t.Variable
	case model.Savings:
		return t.Savings
	}
	return t.TextMuted
}
