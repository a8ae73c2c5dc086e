package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PathElement is one step of a path walk.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct {
	X, Y float64
}

// LineTo draws a straight segment to (X, Y).
type LineTo struct {
	X, Y float64
}

// CubicTo draws a cubic Bezier segment to (X, Y) with control points
// (X1, Y1) and (X2, Y2).
type CubicTo struct {
	X1, Y1, X2, Y2, X, Y float64
}

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isPathElement()  {}
func (LineTo) isPathElement()  {}
func (CubicTo) isPathElement() {}
func (Close) isPathElement()   {}

// Path is an ordered list of elements a rasterizer can walk.
type Path struct {
	elements []PathElement
}

// Elements returns the path's element list.
func (p *Path) Elements() []PathElement {
	return p.elements
}

func (p *Path) moveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{X: x, Y: y})
}

func (p *Path) lineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{X: x, Y: y})
}

func (p *Path) cubicTo(x1, y1, x2, y2, x, y float64) {
	p.elements = append(p.elements, CubicTo{X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y})
}

func (p *Path) close() {
	p.elements = append(p.elements, Close{})
}

// kappa scales a radius to the cubic Bezier control offset that best
// approximates a quarter circle.
const kappa = 0.5522847498

// CirclePath builds the largest circle centered on a width x height
// canvas from four cubic arcs.
func CirclePath(width, height int) *Path {
	cx := float64(width) / 2
	cy := float64(height) / 2
	r := math.Min(cx, cy)
	k := kappa * r
	p := &Path{}
	p.moveTo(cx+r, cy)
	p.cubicTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.cubicTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.cubicTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.cubicTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.close()
	return p
}

// RoundedRectPath builds a width x height rectangle whose corners are
// cubic arcs of the given radius. The radius is clamped so opposite
// corners never overlap.
func RoundedRectPath(width, height int, radius float64) *Path {
	w := float64(width)
	h := float64(height)
	r := math.Min(radius, math.Min(w/2, h/2))
	if r < 0 {
		r = 0
	}
	k := kappa * r
	p := &Path{}
	p.moveTo(r, 0)
	p.lineTo(w-r, 0)
	p.cubicTo(w-r+k, 0, w, r-k, w, r)
	p.lineTo(w, h-r)
	p.cubicTo(w, h-r+k, w-r+k, h, w-r, h)
	p.lineTo(r, h)
	p.cubicTo(r-k, h, 0, h-r+k, 0, h-r)
	p.lineTo(0, r)
	p.cubicTo(0, r-k, r-k, 0, r, 0)
	p.close()
	return p
}

// Squircle parameters: superellipse exponent and line segments per
// corner.
const (
	squircleExponent = 5.0
	squircleSteps    = 32
)

// SquirclePath builds a width x height rectangle with superellipse
// corners of the given radius. Corners are flattened into fixed-count
// line segments, so the element count is deterministic for a given
// radius and size. The outline runs clockwise from the top edge.
func SquirclePath(width, height int, radius float64) *Path {
	w := float64(width)
	h := float64(height)
	r := math.Min(radius, math.Min(w/2, h/2))
	if r < 0 {
		r = 0
	}
	p := &Path{}
	p.moveTo(r, 0)
	p.lineTo(w-r, 0)
	squircleCorner(p, w-r, r, r, -math.Pi/2, 0)
	p.lineTo(w, h-r)
	squircleCorner(p, w-r, h-r, r, 0, math.Pi/2)
	p.lineTo(r, h)
	squircleCorner(p, r, h-r, r, math.Pi/2, math.Pi)
	p.lineTo(0, r)
	squircleCorner(p, r, r, r, math.Pi, 3*math.Pi/2)
	p.close()
	return p
}

// squircleCorner appends one superellipse corner arc centered at
// (cx, cy), sweeping the parameter from t0 to t1.
func squircleCorner(p *Path, cx, cy, r, t0, t1 float64) {
	e := 2 / squircleExponent
	for i := 1; i <= squircleSteps; i++ {
		t := t0 + (t1-t0)*float64(i)/squircleSteps
		st, ct := math.Sincos(t)
		x := cx + math.Copysign(math.Pow(math.Abs(ct), e), ct)*r
		y := cy + math.Copysign(math.Pow(math.Abs(st), e), st)*r
		p.lineTo(x, y)
	}
}

// MaskKind selects the mask shape.
type MaskKind int

const (
	MaskNone MaskKind = iota
	MaskCircle
	MaskRounded
	MaskSquircle
)

// Mask is a parsed mask spec. Radius is in pixels, already resolved
// and clamped; it is meaningful for the rounded and squircle kinds.
type Mask struct {
	Kind   MaskKind
	Radius float64
}

// defaultMaskRadiusPct is the corner radius, as a fraction of the
// short canvas side, used when rounded or squircle is given bare.
const defaultMaskRadiusPct = 0.10

// ParseMask parses a mask spec: "none" (or empty), "circle",
// "rounded[:radius]" or "squircle[:radius]". The radius accepts raw
// pixels or a percentage of min(width, height) and is clamped to half
// the short side. A bare rounded or squircle uses 10%.
func ParseMask(spec string, width, height int) (Mask, error) {
	s := strings.TrimSpace(strings.ToLower(spec))
	if s == "" || s == "none" {
		return Mask{Kind: MaskNone}, nil
	}
	minSide := float64(width)
	if height < width {
		minSide = float64(height)
	}
	name := s
	arg := ""
	if i := strings.IndexByte(s, ':'); i >= 0 {
		name = s[:i]
		arg = s[i+1:]
	}
	var kind MaskKind
	switch name {
	case "circle":
		if arg != "" {
			return Mask{}, fmt.Errorf("%w: circle takes no radius, got %q", ErrInvalidMaskSpec, spec)
		}
		return Mask{Kind: MaskCircle}, nil
	case "rounded":
		kind = MaskRounded
	case "squircle":
		kind = MaskSquircle
	default:
		return Mask{}, fmt.Errorf("%w: unknown mask %q", ErrInvalidMaskSpec, spec)
	}
	r := defaultMaskRadiusPct * minSide
	if arg != "" {
		var err error
		if arg[len(arg)-1] == '%' {
			var pct float64
			pct, err = strconv.ParseFloat(arg[:len(arg)-1], 64)
			r = pct / 100 * minSide
		} else {
			r, err = strconv.ParseFloat(arg, 64)
		}
		if err != nil {
			return Mask{}, fmt.Errorf("%w: bad radius %q", ErrInvalidMaskSpec, arg)
		}
		if r < 0 {
			return Mask{}, fmt.Errorf("%w: negative radius %q", ErrInvalidMaskSpec, arg)
		}
	}
	if half := minSide / 2; r > half {
		r = half
	}
	return Mask{Kind: kind, Radius: r}, nil
}

// Path builds the clip outline for the mask on a width x height
// canvas. It returns nil for MaskNone.
func (m Mask) Path(width, height int) *Path {
	switch m.Kind {
	case MaskCircle:
		return CirclePath(width, height)
	case MaskRounded:
		return RoundedRectPath(width, height, m.Radius)
	case MaskSquircle:
		return SquirclePath(width, height, m.Radius)
	}
	return nil
}
