package raster

import (
	"image"
	"image/color"
)

// compositeAlphaOver source-over composites a tinted coverage mask onto
// dst. The effective source alpha at each pixel is the mask coverage
// scaled by opacity and the tint's own alpha.
func compositeAlphaOver(dst *image.NRGBA, mask *image.Alpha, tint color.NRGBA, opacity float64) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sa := float64(mask.Pix[mask.PixOffset(x, y)]) / 255 * opacity * float64(tint.A) / 255
			if sa <= 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			dst.Pix[i] = clampFloatToUint8((1-sa)*float64(dst.Pix[i]) + sa*float64(tint.R))
			dst.Pix[i+1] = clampFloatToUint8((1-sa)*float64(dst.Pix[i+1]) + sa*float64(tint.G))
			dst.Pix[i+2] = clampFloatToUint8((1-sa)*float64(dst.Pix[i+2]) + sa*float64(tint.B))
			da := float64(dst.Pix[i+3]) / 255
			dst.Pix[i+3] = clampFloatToUint8((sa + da*(1-sa)) * 255)
		}
	}
}

// applyAlphaMask multiplies dst's alpha channel by the mask coverage,
// clipping the image to the mask shape.
func applyAlphaMask(dst *image.NRGBA, mask *image.Alpha) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := dst.PixOffset(x, y)
			m := mask.Pix[mask.PixOffset(x, y)]
			dst.Pix[i+3] = uint8(uint16(dst.Pix[i+3]) * uint16(m) / 255)
		}
	}
}
