package raster

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/Fepozopo/phold/pkg/scene"
)

// maxScale bounds the supersampling factor.
const maxScale = 8

// Options tunes rendering. Scale supersamples the canvas by an integer
// factor and downsamples the result for smoother edges; values are
// clamped into [1, 8].
type Options struct {
	Scale int
}

// Render rasterizes a composed scene into an image. The pipeline is
// background, drop shadow, outline, text fill, then the mask clip,
// with an optional supersample around the whole thing.
func Render(sc *scene.Scene, opts Options) (*image.NRGBA, error) {
	if sc == nil {
		return nil, errors.New("nil scene")
	}
	k := clampInt(opts.Scale, 1, maxScale)
	w := sc.Width * k
	h := sc.Height * k

	img := renderBackground(w, h, sc.Background)
	if len(sc.Lines) > 0 {
		drawText(img, sc, float64(k))
	}
	if sc.MaskPath != nil {
		applyAlphaMask(img, rasterizePath(sc.MaskPath, w, h, float64(k)))
	}
	if k > 1 {
		img = resampleLanczos(img, sc.Width, sc.Height)
	}
	return img, nil
}

// renderBackground fills a fresh canvas from the background sampler.
// Solid colors take the uniform-fill fast path; gradients sample every
// pixel at its center.
func renderBackground(w, h int, bg scene.Background) *image.NRGBA {
	if s, ok := bg.(scene.Solid); ok {
		return newSolidNRGBA(w, h, toNRGBA(s.Color))
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := (float64(y) + 0.5) / float64(h)
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			c := toNRGBA(bg.At(u, v))
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

// linePos is one laid-out line: its text and baseline origin.
type linePos struct {
	text string
	x, y float64
}

// drawText draws the scene's text block onto img at supersample factor
// k, layering shadow under outline under fill.
func drawText(img *image.NRGBA, sc *scene.Scene, k float64) {
	face := resolveFace(sc.Font, sc.Font.Size*k)
	cw := float64(img.Bounds().Dx())
	pos := make([]linePos, len(sc.Lines))
	for i, line := range sc.Lines {
		pos[i] = linePos{
			text: line,
			x:    (cw - lineWidth(face, line)) / 2,
			y:    sc.Baselines[i] * k,
		}
	}

	if sh := sc.Effects.Shadow; sh.Enabled {
		layer := image.NewAlpha(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
		for _, p := range pos {
			drawLine(layer, face, p.text, p.x+sh.DX*k, p.y+sh.DY*k, image.Opaque)
		}
		if sh.Blur > 0 {
			layer = blurAlpha(layer, sh.Blur*k/2)
		}
		compositeAlphaOver(img, layer, toNRGBA(sh.Color), sh.Opacity)
	}

	if ol := sc.Effects.Outline; ol.Enabled {
		r := int(math.Round(ol.Width * k))
		col := toNRGBA(ol.Color)
		for _, p := range pos {
			// stamp the line at every offset within the outline radius
			for dy := -r; dy <= r; dy++ {
				for dx := -r; dx <= r; dx++ {
					if (dx == 0 && dy == 0) || dx*dx+dy*dy > r*r {
						continue
					}
					drawLine(img, face, p.text, p.x+float64(dx), p.y+float64(dy), image.NewUniform(col))
				}
			}
		}
	}

	fill := image.NewUniform(toNRGBA(sc.TextColor))
	for _, p := range pos {
		drawLine(img, face, p.text, p.x, p.y, fill)
	}
}

// rasterizePath scan-converts a path, scaled by k, into an antialiased
// coverage mask.
func rasterizePath(p *scene.Path, w, h int, k float64) *image.Alpha {
	var r vector.Rasterizer
	r.Reset(w, h)
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case scene.MoveTo:
			r.MoveTo(float32(e.X*k), float32(e.Y*k))
		case scene.LineTo:
			r.LineTo(float32(e.X*k), float32(e.Y*k))
		case scene.CubicTo:
			r.CubeTo(float32(e.X1*k), float32(e.Y1*k), float32(e.X2*k), float32(e.Y2*k), float32(e.X*k), float32(e.Y*k))
		case scene.Close:
			r.ClosePath()
		}
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
