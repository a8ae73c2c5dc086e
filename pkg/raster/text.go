package raster

import (
	"image"
	"image/draw"
	"log"
	"math"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Fepozopo/phold/pkg/scene"
)

// resolveFace loads the font face for the scene at the given pixel
// size. A font file path wins when it can be read; otherwise the
// embedded Go fonts are used, with the weight selecting regular or
// bold. Every failure logs and falls through, ending at the basic
// 7x13 face so rendering always has something to draw with.
func resolveFace(cfg scene.FontConfig, sizePx float64) font.Face {
	data := goregular.TTF
	if strings.EqualFold(cfg.Weight, "bold") {
		data = gobold.TTF
	}
	if cfg.Family != "" {
		b, err := os.ReadFile(cfg.Family)
		if err != nil {
			log.Printf("failed to read font file %s: %v; falling back to embedded font", cfg.Family, err)
		} else {
			data = b
		}
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		log.Printf("failed to parse font: %v; falling back to basicfont", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("failed to create font face: %v; falling back to basicfont", err)
		return basicfont.Face7x13
	}
	return face
}

// lineWidth measures the advance of one line in pixels.
func lineWidth(face font.Face, text string) float64 {
	return float64(font.MeasureString(face, text)) / 64
}

// drawLine draws one line of text with its baseline origin at (x, y).
// src is typically a uniform color, or image.Opaque when stamping a
// coverage mask.
func drawLine(dst draw.Image, face font.Face, text string, x, y float64, src image.Image) {
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * 64)),
			Y: fixed.Int26_6(math.Round(y * 64)),
		},
	}
	d.DrawString(text)
}
