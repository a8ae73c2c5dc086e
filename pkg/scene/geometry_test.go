package scene

import (
	"errors"
	"testing"
)

func TestParseMask(t *testing.T) {
	cases := []struct {
		in     string
		kind   MaskKind
		radius float64
	}{
		{"", MaskNone, 0},
		{"none", MaskNone, 0},
		{"circle", MaskCircle, 0},
		{"rounded:15%", MaskRounded, 60},
		{"rounded:25", MaskRounded, 25},
		{"rounded", MaskRounded, 40},
		{"squircle", MaskSquircle, 40},
		{"squircle:80", MaskSquircle, 80},
		{"SQUIRCLE:20%", MaskSquircle, 80},
		{"rounded:1000", MaskRounded, 200},
	}
	for _, c := range cases {
		m, err := ParseMask(c.in, 800, 400)
		if err != nil {
			t.Fatalf("ParseMask(%q) returned error: %v", c.in, err)
		}
		if m.Kind != c.kind || m.Radius != c.radius {
			t.Fatalf("ParseMask(%q) = %+v, expected kind %v radius %g", c.in, m, c.kind, c.radius)
		}
	}
}

func TestParseMaskInvalid(t *testing.T) {
	cases := []string{"hexagon", "rounded:-5", "rounded:wide", "circle:10", "rounded:10:20"}
	for _, in := range cases {
		if _, err := ParseMask(in, 800, 400); !errors.Is(err, ErrInvalidMaskSpec) {
			t.Fatalf("ParseMask(%q) error = %v, expected ErrInvalidMaskSpec", in, err)
		}
	}
}

func TestCirclePath(t *testing.T) {
	p := CirclePath(400, 200)
	els := p.Elements()
	if len(els) != 6 {
		t.Fatalf("circle has %d elements, expected 6", len(els))
	}
	start, ok := els[0].(MoveTo)
	if !ok {
		t.Fatalf("first element is %T, expected MoveTo", els[0])
	}
	// Radius is the short half-side, so the path starts at (300, 100).
	if start.X != 300 || start.Y != 100 {
		t.Fatalf("circle starts at (%g, %g), expected (300, 100)", start.X, start.Y)
	}
	if _, ok := els[5].(Close); !ok {
		t.Fatalf("last element is %T, expected Close", els[5])
	}
}

func TestRoundedRectPathClamp(t *testing.T) {
	p := RoundedRectPath(100, 100, 500)
	start, ok := p.Elements()[0].(MoveTo)
	if !ok {
		t.Fatalf("first element is %T, expected MoveTo", p.Elements()[0])
	}
	if start.X != 50 || start.Y != 0 {
		t.Fatalf("clamped path starts at (%g, %g), expected (50, 0)", start.X, start.Y)
	}
}

func TestSquirclePathElementCount(t *testing.T) {
	// One move, four edges, four 32-step corners and a close. The
	// count must not depend on radius or canvas size.
	for _, r := range []float64{0, 20, 60} {
		p := SquirclePath(800, 400, r)
		if n := len(p.Elements()); n != 134 {
			t.Fatalf("squircle with radius %g has %d elements, expected 134", r, n)
		}
	}
}

func TestSquircleCornerEndpoints(t *testing.T) {
	p := SquirclePath(200, 100, 30)
	els := p.Elements()
	// The top-right corner arc runs from the end of the top edge and
	// must land exactly on the start of the right edge.
	last, ok := els[33].(LineTo)
	if !ok {
		t.Fatalf("element 33 is %T, expected LineTo", els[33])
	}
	if last.X != 200 || last.Y != 30 {
		t.Fatalf("top-right corner ends at (%g, %g), expected (200, 30)", last.X, last.Y)
	}
}

func TestMaskPath(t *testing.T) {
	m, err := ParseMask("rounded:15%", 800, 400)
	if err != nil {
		t.Fatalf("ParseMask returned error: %v", err)
	}
	p := m.Path(800, 400)
	if p == nil {
		t.Fatalf("rounded mask produced no path")
	}
	start := p.Elements()[0].(MoveTo)
	if start.X != 60 {
		t.Fatalf("rounded path starts at x=%g, expected 60", start.X)
	}
	if none, _ := ParseMask("none", 800, 400); none.Path(800, 400) != nil {
		t.Fatalf("none mask produced a path")
	}
}
