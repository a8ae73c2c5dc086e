package raster

import (
	"image"
	"math"
	"testing"
)

func TestGaussianKernel1D(t *testing.T) {
	kernel, radius := gaussianKernel1D(2.0)
	if radius != 6 {
		t.Fatalf("radius = %d, expected ceil(3*sigma) = 6", radius)
	}
	if len(kernel) != 2*radius+1 {
		t.Fatalf("kernel length = %d, expected %d", len(kernel), 2*radius+1)
	}
	sum := 0.0
	for _, v := range kernel {
		sum += v
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("kernel sum = %g, expected 1", sum)
	}
	for i := 0; i <= radius; i++ {
		if kernel[i] != kernel[len(kernel)-1-i] {
			t.Fatalf("kernel not symmetric at %d", i)
		}
	}
}

func TestBlurAlphaSpreads(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 11, 11))
	src.Pix[5*src.Stride+5] = 255

	out := blurAlpha(src, 1.5)
	center := out.Pix[5*out.Stride+5]
	neighbor := out.Pix[5*out.Stride+7]
	if center >= 255 {
		t.Fatalf("center = %d, expected the impulse to spread out", center)
	}
	if neighbor == 0 {
		t.Fatalf("neighbor = %d, expected blur to reach it", neighbor)
	}
	if center <= neighbor {
		t.Fatalf("center %d not brighter than neighbor %d", center, neighbor)
	}
}

func TestBlurAlphaZeroSigma(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 4, 4))
	if out := blurAlpha(src, 0); out != src {
		t.Fatalf("zero sigma should return the source untouched")
	}
}
