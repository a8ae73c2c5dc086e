package raster

import (
	"image"
	"math"
	"sync"
)

// gaussianKernel1D generates a normalized 1D Gaussian kernel for the
// given sigma. Returns the kernel and its radius.
func gaussianKernel1D(sigma float64) ([]float64, int) {
	if sigma <= 0 {
		sigma = 0.5
	}
	// radius ~ ceil(3*sigma) captures virtually all of the curve
	radius := int(math.Ceil(3 * sigma))
	size := 2*radius + 1
	kernel := make([]float64, size)
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - radius)
		v := math.Exp(-(x * x) / (2 * sigma * sigma))
		kernel[i] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel, radius
}

// blurAlpha applies a separable gaussian blur to a coverage mask and
// returns a new mask. Each pass fans out one goroutine per row or
// column. Edges clamp to the nearest pixel.
func blurAlpha(src *image.Alpha, sigma float64) *image.Alpha {
	if sigma <= 0 {
		return src
	}
	kernel, radius := gaussianKernel1D(sigma)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	// horizontal pass
	tmp := image.NewAlpha(image.Rect(0, 0, w, h))
	var wg sync.WaitGroup
	wg.Add(h)
	for y := 0; y < h; y++ {
		go func(y int) {
			defer wg.Done()
			row := y * src.Stride
			for x := 0; x < w; x++ {
				var acc float64
				for t := -radius; t <= radius; t++ {
					sx := clampInt(x+t, 0, w-1)
					acc += kernel[t+radius] * float64(src.Pix[row+sx])
				}
				tmp.Pix[y*tmp.Stride+x] = clampFloatToUint8(acc)
			}
		}(y)
	}
	wg.Wait()

	// vertical pass
	out := image.NewAlpha(image.Rect(0, 0, w, h))
	wg.Add(w)
	for x := 0; x < w; x++ {
		go func(x int) {
			defer wg.Done()
			for y := 0; y < h; y++ {
				var acc float64
				for t := -radius; t <= radius; t++ {
					sy := clampInt(y+t, 0, h-1)
					acc += kernel[t+radius] * float64(tmp.Pix[sy*tmp.Stride+x])
				}
				out.Pix[y*out.Stride+x] = clampFloatToUint8(acc)
			}
		}(x)
	}
	wg.Wait()
	return out
}
