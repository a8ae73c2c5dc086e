package raster

import (
	"image/png"
	"os"
	"testing"

	"github.com/Fepozopo/phold/pkg/scene"
)

func mustCompose(t *testing.T, spec scene.Spec) *scene.Scene {
	t.Helper()
	sc, err := scene.Compose(spec)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	return sc
}

func TestRenderSolid(t *testing.T) {
	sc := mustCompose(t, scene.Spec{Width: 50, Height: 30, BG: "#336699"})
	out, err := Render(sc, Options{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	b := out.Bounds()
	if b.Dx() != 50 || b.Dy() != 30 {
		t.Fatalf("output is %dx%d, expected 50x30", b.Dx(), b.Dy())
	}
	i := out.PixOffset(25, 15)
	if out.Pix[i] != 0x33 || out.Pix[i+1] != 0x66 || out.Pix[i+2] != 0x99 || out.Pix[i+3] != 255 {
		t.Fatalf("center pixel = %v, expected #336699 opaque", out.Pix[i:i+4])
	}
}

func TestRenderLinearGradient(t *testing.T) {
	// 90 degrees points right: dark on the left, light on the right.
	sc := mustCompose(t, scene.Spec{Width: 64, Height: 16, BGLinear: "#000000,#ffffff,90"})
	out, err := Render(sc, Options{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	left := out.PixOffset(0, 8)
	right := out.PixOffset(63, 8)
	if out.Pix[left] > 10 {
		t.Fatalf("left edge = %d, expected near black", out.Pix[left])
	}
	if out.Pix[right] < 245 {
		t.Fatalf("right edge = %d, expected near white", out.Pix[right])
	}
}

func TestRenderRadialGradient(t *testing.T) {
	sc := mustCompose(t, scene.Spec{Width: 40, Height: 40, BGRadial: "#ffffff,#000000,50%,50%,50%"})
	out, err := Render(sc, Options{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	center := out.PixOffset(20, 20)
	corner := out.PixOffset(0, 0)
	if out.Pix[center] < 230 {
		t.Fatalf("center = %d, expected near the inner stop", out.Pix[center])
	}
	// the corner sits past the radius and clamps to the outer stop
	if out.Pix[corner] != 0 {
		t.Fatalf("corner = %d, expected the outer stop", out.Pix[corner])
	}
}

func TestRenderMaskClipsCorners(t *testing.T) {
	sc := mustCompose(t, scene.Spec{Width: 40, Height: 40, BG: "#ff0000", Mask: "circle"})
	out, err := Render(sc, Options{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if a := out.Pix[out.PixOffset(0, 0)+3]; a != 0 {
		t.Fatalf("corner alpha = %d, expected fully transparent", a)
	}
	if a := out.Pix[out.PixOffset(20, 20)+3]; a != 255 {
		t.Fatalf("center alpha = %d, expected fully opaque", a)
	}
}

func TestRenderTextDrawsPixels(t *testing.T) {
	sc := mustCompose(t, scene.Spec{Width: 200, Height: 100, BG: "#000000", Text: "Hi"})
	out, err := Render(sc, Options{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// auto text on black is white, so bright pixels must show up
	bright := 0
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if out.Pix[out.PixOffset(x, y)] > 128 {
				bright++
			}
		}
	}
	if bright == 0 {
		t.Fatalf("expected text to draw bright pixels on the dark background")
	}
}

func TestRenderSupersample(t *testing.T) {
	sc := mustCompose(t, scene.Spec{Width: 60, Height: 40, BG: "#336699"})
	out, err := Render(sc, Options{Scale: 2})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	b := out.Bounds()
	if b.Dx() != 60 || b.Dy() != 40 {
		t.Fatalf("supersampled output is %dx%d, expected 60x40", b.Dx(), b.Dy())
	}
	// a uniform field must survive the downsample untouched
	i := out.PixOffset(30, 20)
	if out.Pix[i] != 0x33 || out.Pix[i+1] != 0x66 || out.Pix[i+2] != 0x99 {
		t.Fatalf("center pixel = %v, expected #336699", out.Pix[i:i+4])
	}
}

func TestRenderNilScene(t *testing.T) {
	if _, err := Render(nil, Options{}); err == nil {
		t.Fatalf("expected error for nil scene")
	}
}

func TestRenderFull(t *testing.T) {
	sc := mustCompose(t, scene.Spec{
		Width:    320,
		Height:   180,
		BGLinear: "#111827,#0ea5e9,135",
		Text:     `Hello\nWorld`,
		Mask:     "squircle:12%",
		Effects:  scene.EffectOptions{Outline: true, Shadow: true},
	})
	out, err := Render(sc, Options{Scale: 2})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out == nil {
		t.Fatalf("render returned nil image")
	}
	// save to tmp for manual inspection if env var set
	if os.Getenv("PHOLD_SAVE_TEST_OUTPUT") == "1" {
		f, _ := os.Create("render_test_out.png")
		defer f.Close()
		png.Encode(f, out)
	}
}
