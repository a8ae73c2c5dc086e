package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an 8-bit RGB color with a fractional alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// The two candidate text colors for automatic contrast selection.
var (
	White = Color{R: 255, G: 255, B: 255, A: 1}
	Black = Color{R: 0, G: 0, B: 0, A: 1}
)

// ParseHex parses a hex color string. The leading '#' is optional and
// the digit count must be 3 (rgb), 6 (rrggbb) or 8 (rrggbbaa).
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint64
	a := uint64(255)
	var err error
	switch len(hex) {
	case 3:
		r, err = strconv.ParseUint(strings.Repeat(string(hex[0]), 2), 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(strings.Repeat(string(hex[1]), 2), 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(strings.Repeat(string(hex[2]), 2), 16, 8)
		}
	case 6, 8:
		r, err = strconv.ParseUint(hex[0:2], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(hex[2:4], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(hex[4:6], 16, 8)
		}
		if err == nil && len(hex) == 8 {
			a, err = strconv.ParseUint(hex[6:8], 16, 8)
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: float64(a) / 255}, nil
}

// Hex formats the color as a lowercase "#rrggbb" string. Alpha is not
// represented.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// srgbToLinear converts one 8-bit sRGB channel to linear light.
func srgbToLinear(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of c, ignoring
// alpha. Coefficients are the Rec. 709 primaries.
func RelativeLuminance(c Color) float64 {
	return 0.2126*srgbToLinear(c.R) + 0.7152*srgbToLinear(c.G) + 0.0722*srgbToLinear(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between two relative
// luminances. The result is in [1, 21] regardless of argument order.
func ContrastRatio(l1, l2 float64) float64 {
	if l2 > l1 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// AutoTextColor picks white or black text for a solid background,
// whichever contrasts more. Ties go to white.
func AutoTextColor(bg Color) Color {
	lb := RelativeLuminance(bg)
	cw := ContrastRatio(RelativeLuminance(White), lb)
	cb := ContrastRatio(RelativeLuminance(Black), lb)
	if cw >= cb {
		return White
	}
	return Black
}

// AutoTextColorGradient picks white or black text for a gradient
// background. It samples the center and four near-corner points and
// keeps the candidate whose worst-case contrast across the samples is
// higher, so text stays readable over the full gradient ramp. Ties go
// to white.
func AutoTextColorGradient(bg Background) Color {
	samples := [5][2]float64{
		{0.5, 0.5},
		{0.05, 0.05},
		{0.95, 0.05},
		{0.05, 0.95},
		{0.95, 0.95},
	}
	lw := RelativeLuminance(White)
	lb := RelativeLuminance(Black)
	worstW := math.Inf(1)
	worstB := math.Inf(1)
	for _, p := range samples {
		ls := RelativeLuminance(bg.At(p[0], p[1]))
		if cw := ContrastRatio(lw, ls); cw < worstW {
			worstW = cw
		}
		if cb := ContrastRatio(lb, ls); cb < worstB {
			worstB = cb
		}
	}
	if worstW >= worstB {
		return White
	}
	return Black
}

// lerpColor interpolates every channel of a toward b by t in [0, 1].
// t == 0 and t == 1 reproduce a and b exactly.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: uint8(math.Round(float64(a.R) + (float64(b.R)-float64(a.R))*t)),
		G: uint8(math.Round(float64(a.G) + (float64(b.G)-float64(a.G))*t)),
		B: uint8(math.Round(float64(a.B) + (float64(b.B)-float64(a.B))*t)),
		A: a.A + (b.A-a.A)*t,
	}
}
