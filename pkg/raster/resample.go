package raster

import (
	"image"
	"math"
)

// lanczosA is the Lanczos filter support, three lobes per side.
const lanczosA = 3.0

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

func lanczosKernel(x, a float64) float64 {
	x = math.Abs(x)
	if x >= a {
		return 0
	}
	return sinc(x) * sinc(x/a)
}

// contrib is one output pixel's window of normalized source weights.
type contrib struct {
	start   int
	weights []float64
}

// axisContribs precomputes the Lanczos weight window for every output
// position along one axis. Pixel centers map with the usual half-pixel
// offset and windows clamp at the image edges.
func axisContribs(srcLen, dstLen int) []contrib {
	scale := float64(srcLen) / float64(dstLen)
	fscale := math.Max(scale, 1)
	radius := lanczosA * fscale
	out := make([]contrib, dstLen)
	for d := 0; d < dstLen; d++ {
		center := (float64(d)+0.5)*scale - 0.5
		lo := clampInt(int(math.Floor(center-radius)), 0, srcLen-1)
		hi := clampInt(int(math.Ceil(center+radius)), 0, srcLen-1)
		ws := make([]float64, hi-lo+1)
		sum := 0.0
		for s := lo; s <= hi; s++ {
			w := lanczosKernel((float64(s)-center)/fscale, lanczosA)
			ws[s-lo] = w
			sum += w
		}
		if sum != 0 {
			for i := range ws {
				ws[i] /= sum
			}
		}
		out[d] = contrib{start: lo, weights: ws}
	}
	return out
}

// resampleLanczos scales src to dstW x dstH with a separable Lanczos
// filter, horizontal pass then vertical pass. Channels are filtered
// independently. Returns src itself when the size already matches.
func resampleLanczos(src *image.NRGBA, dstW, dstH int) *image.NRGBA {
	b := src.Bounds()
	if dstW == b.Dx() && dstH == b.Dy() {
		return src
	}
	horiz := image.NewNRGBA(image.Rect(0, 0, dstW, b.Dy()))
	resamplePass(horiz, src, axisContribs(b.Dx(), dstW), true)
	out := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	resamplePass(out, horiz, axisContribs(b.Dy(), dstH), false)
	return out
}

func resamplePass(dst, src *image.NRGBA, contribs []contrib, horizontal bool) {
	dw := dst.Bounds().Dx()
	dh := dst.Bounds().Dy()
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			c := contribs[x]
			if !horizontal {
				c = contribs[y]
			}
			var r, g, b, a float64
			for i, w := range c.weights {
				var si int
				if horizontal {
					si = src.PixOffset(c.start+i, y)
				} else {
					si = src.PixOffset(x, c.start+i)
				}
				r += w * float64(src.Pix[si])
				g += w * float64(src.Pix[si+1])
				b += w * float64(src.Pix[si+2])
				a += w * float64(src.Pix[si+3])
			}
			di := dst.PixOffset(x, y)
			dst.Pix[di] = clampFloatToUint8(r)
			dst.Pix[di+1] = clampFloatToUint8(g)
			dst.Pix[di+2] = clampFloatToUint8(b)
			dst.Pix[di+3] = clampFloatToUint8(a)
		}
	}
}
