package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Background produces the color for any normalized point on the canvas.
// u and v are in [0, 1] with v growing downward.
type Background interface {
	At(u, v float64) Color
}

// Solid is a single-color background.
type Solid struct {
	Color Color
}

func (s Solid) At(u, v float64) Color { return s.Color }

// Linear is a two-stop linear gradient. Angle follows the CSS
// convention: 0 points up and the angle grows clockwise, so 135 runs
// from the top-left toward the bottom-right.
type Linear struct {
	Start, End Color
	Angle      float64
}

// At projects the point onto the gradient axis and interpolates the
// stops. Points past either stop clamp to that stop exactly.
func (l Linear) At(u, v float64) Color {
	theta := (l.Angle - 90) * math.Pi / 180
	t := (u-0.5)*math.Cos(theta) + (v-0.5)*math.Sin(theta) + 0.5
	return lerpColor(l.Start, l.End, clamp01(t))
}

// Radial is a two-stop radial gradient. Center and radius are in
// pixels, resolved against the canvas size at parse time.
type Radial struct {
	Inner, Outer  Color
	CX, CY, R     float64
	Width, Height int
}

// At interpolates from the inner stop at the center to the outer stop
// at the radius. Points at or beyond the radius are the outer stop
// exactly, as is everything when the radius is not positive.
func (r Radial) At(u, v float64) Color {
	if r.R <= 0 {
		return r.Outer
	}
	d := math.Hypot(u*float64(r.Width)-r.CX, v*float64(r.Height)-r.CY)
	return lerpColor(r.Inner, r.Outer, clamp01(d/r.R))
}

// ParseLinear parses a linear gradient spec of the form
// "hex1,hex2,angleDeg". The angle may be any real number and is
// normalized into [0, 360).
func ParseLinear(spec string) (Linear, error) {
	fields := strings.Split(spec, ",")
	if len(fields) != 3 {
		return Linear{}, fmt.Errorf("%w: linear wants hex1,hex2,angle, got %q", ErrInvalidBackgroundSpec, spec)
	}
	start, err := ParseHex(fields[0])
	if err != nil {
		return Linear{}, err
	}
	end, err := ParseHex(fields[1])
	if err != nil {
		return Linear{}, err
	}
	deg, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return Linear{}, fmt.Errorf("%w: bad angle %q", ErrInvalidBackgroundSpec, fields[2])
	}
	deg = math.Mod(math.Mod(deg, 360)+360, 360)
	return Linear{Start: start, End: end, Angle: deg}, nil
}

// ParseRadial parses a radial gradient spec of the form
// "innerHex,outerHex[,cx,cy,r]". Center and radius accept raw pixel
// values or percentages; cx resolves against the width, cy against the
// height and r against min(width, height). Omitted fields default to
// 50%,50%,75%.
func ParseRadial(spec string, width, height int) (Radial, error) {
	fields := strings.Split(spec, ",")
	if len(fields) < 2 || len(fields) > 5 {
		return Radial{}, fmt.Errorf("%w: radial wants innerHex,outerHex[,cx,cy,r], got %q", ErrInvalidBackgroundSpec, spec)
	}
	inner, err := ParseHex(fields[0])
	if err != nil {
		return Radial{}, err
	}
	outer, err := ParseHex(fields[1])
	if err != nil {
		return Radial{}, err
	}
	minSide := float64(width)
	if height < width {
		minSide = float64(height)
	}
	cx := 0.5 * float64(width)
	cy := 0.5 * float64(height)
	r := 0.75 * minSide
	if len(fields) >= 3 {
		if cx, err = parseLength(fields[2], float64(width)); err != nil {
			return Radial{}, err
		}
	}
	if len(fields) >= 4 {
		if cy, err = parseLength(fields[3], float64(height)); err != nil {
			return Radial{}, err
		}
	}
	if len(fields) == 5 {
		if r, err = parseLength(fields[4], minSide); err != nil {
			return Radial{}, err
		}
	}
	return Radial{Inner: inner, Outer: outer, CX: cx, CY: cy, R: r, Width: width, Height: height}, nil
}

// parseLength parses a pixel value, or a percentage of base when the
// field carries a '%' suffix.
func parseLength(s string, base float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s != "" && s[len(s)-1] == '%' {
		pct, err := strconv.ParseFloat(s[:len(s)-1], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad length %q", ErrInvalidBackgroundSpec, s)
		}
		return pct / 100 * base, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad length %q", ErrInvalidBackgroundSpec, s)
	}
	return v, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
