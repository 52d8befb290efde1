package heatmap

import "github.com/lucasb-eyer/go-colorful"

var white = colorful.Color{R: 1, G: 1, B: 1}

// MixColor blends the base color toward white by the given intensity:
// 0 renders pure white, 1 renders the base color itself, producing the
// light-to-dark encoding for low-to-high values. The base accepts 3- or
// 6-digit hex; anything that does not parse falls back to DefaultBaseColor.
// The result is a normalized lowercase "#rrggbb" string.
func MixColor(base string, intensity float64) string {
	if !validHexColor(base) {
		base = DefaultBaseColor
	}
	c, _ := colorful.Hex(base)
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	return c.BlendRgb(white, 1-intensity).Hex()
}

// validHexColor reports whether s parses as a 3- or 6-digit hex color.
// The length check matters: Sscanf-based parsing would otherwise accept
// truncated forms like "#12345".
func validHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	_, err := colorful.Hex(s)
	return err == nil
}
