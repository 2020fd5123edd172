// Package theme holds the grass accent color. The color is an explicit
// configuration value threaded into renderers, never ambient state.
package theme

import "strings"

// DefaultColor is the green accent used when nothing valid is stored.
const DefaultColor = "#4caf50"

// PresetColors is the selectable accent palette (red, orange, purple,
// green, blue).
var PresetColors = []string{"#f44336", "#ff9800", "#9c27b0", "#4caf50", "#2196f3"}

// legacyMint is the retired mint palette from early releases; stored
// values from it are rewritten to the default on load.
var legacyMint = []string{"#26a69a", "#4db6ac", "#80cbc4", "#147a6f"}

// IsPreset reports whether c is one of the selectable accent colors.
func IsPreset(c string) bool {
	c = canonical(c)
	for _, p := range PresetColors {
		if c == p {
			return true
		}
	}
	return false
}

// IsLegacy reports whether c belongs to the retired mint palette.
func IsLegacy(c string) bool {
	c = canonical(c)
	for _, m := range legacyMint {
		if c == m {
			return true
		}
	}
	return false
}

// Normalize maps a stored accent value to a usable one: preset colors
// pass through in canonical form, everything else (legacy mint, garbage,
// empty) falls back to the default.
func Normalize(raw string) string {
	c := canonical(raw)
	if IsPreset(c) {
		return c
	}
	return DefaultColor
}

func canonical(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
