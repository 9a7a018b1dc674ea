// Package theme holds the fixed color palette and the selector that cycles
// through it.
//
// The palette is built once at startup and never modified. A Selector
// stores only an index into it.
package theme

import (
	"github.com/dshills/lime/internal/renderer/core"
)

// Mode tells whether a theme is meant for a light or a dark terminal.
type Mode int

const (
	Dark Mode = iota
	Light
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// Theme is a named color scheme.
type Theme struct {
	Name       string
	Mode       Mode
	Background core.Color
	Foreground core.Color
	// Accent is core.ColorDefault when the theme has none.
	Accent core.Color
}

// AccentColor returns the accent color and whether the theme has one.
func (t Theme) AccentColor() (core.Color, bool) {
	return t.Accent, !t.Accent.IsDefault()
}

// TextStyle is the style used for document text.
func (t Theme) TextStyle() core.Style {
	return core.NewStyle(t.Foreground, t.Background)
}

// StatusStyle is the status bar style: theme background on the accent, or
// on the foreground when there is no accent.
func (t Theme) StatusStyle() core.Style {
	bg := t.Foreground
	if accent, ok := t.AccentColor(); ok {
		bg = accent
	}
	return core.NewStyle(t.Background, bg)
}

// selectionBlend is how far the selection background moves from the
// background towards the highlight color.
const selectionBlend = 0.35

// SelectionStyle is the style for selected text. The background is the
// theme background tinted towards the accent (or foreground).
func (t Theme) SelectionStyle() core.Style {
	tint := t.Foreground
	if accent, ok := t.AccentColor(); ok {
		tint = accent
	}
	return core.NewStyle(t.Foreground, t.Background.Blend(tint, selectionBlend))
}

// DefaultName is the theme a new selector starts on.
const DefaultName = "Catppuccin Macchiato"

var palette = []Theme{
	{
		Name:       "Gruvbox (Dark)",
		Mode:       Dark,
		Background: core.MustHex("#282828"),
		Foreground: core.MustHex("#EBDBB2"),
		Accent:     core.MustHex("#FE8019"),
	},
	{
		Name:       "Gruvbox (Light)",
		Mode:       Light,
		Background: core.MustHex("#FBF1C7"),
		Foreground: core.MustHex("#3C3836"),
		Accent:     core.MustHex("#AF3A03"),
	},
	{
		Name:       "Catppuccin Frappé",
		Mode:       Dark,
		Background: core.MustHex("#303446"),
		Foreground: core.MustHex("#C6D0F5"),
		Accent:     core.MustHex("#CA9EE6"),
	},
	{
		Name:       "Catppuccin Macchiato",
		Mode:       Dark,
		Background: core.MustHex("#24273A"),
		Foreground: core.MustHex("#CAD3F5"),
		Accent:     core.MustHex("#C6A0F6"),
	},
	{
		Name:       "Catppuccin Mocha",
		Mode:       Dark,
		Background: core.MustHex("#1E1E2E"),
		Foreground: core.MustHex("#CDD6F4"),
		Accent:     core.MustHex("#CBA6F7"),
	},
}

// Palette returns a copy of the ordered theme list.
func Palette() []Theme {
	out := make([]Theme, len(palette))
	copy(out, palette)
	return out
}

// Names returns the theme names in palette order.
func Names() []string {
	names := make([]string, len(palette))
	for i, t := range palette {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the theme with the given name.
func Lookup(name string) (Theme, bool) {
	if i := indexOf(name); i >= 0 {
		return palette[i], true
	}
	return Theme{}, false
}

func indexOf(name string) int {
	for i, t := range palette {
		if t.Name == name {
			return i
		}
	}
	return -1
}
