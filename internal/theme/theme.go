// Package theme provides the CLI color palette and the gradient text
// helper used by the logo.
package theme

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Theme is the color palette for styled CLI output. Color values are
// #RRGGBB hex strings.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
}

// NewCatppuccinMocha returns the default palette.
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Name:      "catppuccin-mocha",
		Primary:   "#cba6f7", // mauve
		Secondary: "#89b4fa", // blue
	}
}

// ApplyGradient styles text rune by rune, blending the foreground from
// colorA at the first rune to colorB at the last.
func ApplyGradient(text, colorA, colorB string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range runes {
		pos := 0.0
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1)
		}
		c := InterpolateColor(colorA, colorB, pos)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(string(r)))
	}
	return b.String()
}

// InterpolateColor blends between two hex colors based on position
// (0.0 to 1.0).
func InterpolateColor(colorA, colorB string, pos float64) string {
	r1, g1, b1 := parseHexColor(colorA)
	r2, g2, b2 := parseHexColor(colorB)

	r := uint8(float64(r1)*(1-pos) + float64(r2)*pos)
	g := uint8(float64(g1)*(1-pos) + float64(g2)*pos)
	b := uint8(float64(b1)*(1-pos) + float64(b2)*pos)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// parseHexColor extracts RGB channels from a #RRGGBB string. Malformed
// input yields black.
func parseHexColor(hex string) (uint8, uint8, uint8) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b uint8
	if len(hex) == 6 {
		_, _ = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	}
	return r, g, b
}
