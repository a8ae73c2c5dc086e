package raster

import (
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/Fepozopo/phold/pkg/scene"
)

func TestResolveFaceEmbedded(t *testing.T) {
	face := resolveFace(scene.FontConfig{}, 24)
	if face == nil {
		t.Fatalf("resolveFace returned nil")
	}
	if face == basicfont.Face7x13 {
		t.Fatalf("embedded font should not fall back to basicfont")
	}
}

func TestResolveFaceBold(t *testing.T) {
	face := resolveFace(scene.FontConfig{Weight: "Bold"}, 24)
	if face == nil || face == basicfont.Face7x13 {
		t.Fatalf("bold weight should resolve the embedded bold face")
	}
}

func TestResolveFaceMissingFile(t *testing.T) {
	// An unreadable file logs and falls back to the embedded font.
	face := resolveFace(scene.FontConfig{Family: "/no/such/font.ttf"}, 24)
	if face == nil || face == basicfont.Face7x13 {
		t.Fatalf("missing file should fall back to the embedded font")
	}
}

func TestLineWidth(t *testing.T) {
	face := resolveFace(scene.FontConfig{}, 24)
	short := lineWidth(face, "m")
	long := lineWidth(face, "mmmm")
	if short <= 0 {
		t.Fatalf("width of a glyph = %g, expected positive", short)
	}
	if long <= short {
		t.Fatalf("longer line measured %g, not wider than %g", long, short)
	}
}
