package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/Fepozopo/phold/pkg/scene"
)

// toNRGBA converts an engine color to the image/color representation.
func toNRGBA(c scene.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(c.A * 255))}
}

// newSolidNRGBA returns a w x h image filled with c.
func newSolidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// clampInt clamps v into [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clampFloatToUint8 clamps and rounds a float to an 8-bit channel.
func clampFloatToUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
