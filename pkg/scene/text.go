package scene

import (
	"math"
	"strings"
	"unicode/utf8"
)

// MinFontSize is the smallest size auto-shrink will go to.
const MinFontSize = 8

// Glyph box heuristics used to estimate text extents without touching
// font metrics: average advance per rune and line height, both as
// fractions of the font size.
const (
	charWidthRatio  = 0.6
	lineHeightRatio = 1.2
	baselineRatio   = 0.85
)

// SplitLines splits text into lines. A literal backslash-n sequence in
// the input is an escaped newline.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, `\n`, "\n"), "\n")
}

// DefaultFontSize derives a starting font size from the canvas so
// default text scales with the image.
func DefaultFontSize(width, height int) float64 {
	minSide := width
	if height < width {
		minSide = height
	}
	return math.Floor(float64(minSide) / 6)
}

// estimateBlock returns the estimated pixel extent of the text block at
// the given font size. Line length is counted in runes.
func estimateBlock(lines []string, fontSize float64) (w, h float64) {
	maxRunes := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxRunes {
			maxRunes = n
		}
	}
	w = float64(maxRunes) * fontSize * charWidthRatio
	h = float64(len(lines)) * fontSize * lineHeightRatio
	return w, h
}

// EffectivePadding widens the layout padding so outline and shadow
// pixels stay inside the canvas.
func EffectivePadding(padding float64, fx Effects) float64 {
	p := padding
	if fx.Outline.Enabled {
		p += math.Ceil(fx.Outline.Width)
	}
	if fx.Shadow.Enabled {
		p += math.Ceil(math.Max(math.Abs(fx.Shadow.DX), math.Abs(fx.Shadow.DY)) + fx.Shadow.Blur)
	}
	return p
}

// Shrink steps the font size down by 10% at a time until the estimated
// text block fits inside the padded canvas, stopping at MinFontSize.
// The returned size never exceeds the input size.
func Shrink(lines []string, fontSize float64, width, height int, effPadding float64) float64 {
	maxW := float64(width) - 2*effPadding
	maxH := float64(height) - 2*effPadding
	size := fontSize
	bw, bh := estimateBlock(lines, size)
	for (bw > maxW || bh > maxH) && size > MinFontSize {
		size = math.Max(MinFontSize, math.Floor(size*0.9))
		bw, bh = estimateBlock(lines, size)
	}
	return size
}

// Baselines returns the baseline y coordinate for each line, centering
// the block vertically on the canvas.
func Baselines(lineCount int, fontSize float64, height int) []float64 {
	startY := (float64(height)-float64(lineCount)*fontSize*lineHeightRatio)/2 + fontSize*baselineRatio
	ys := make([]float64, lineCount)
	for i := range ys {
		ys[i] = startY + float64(i)*fontSize*lineHeightRatio
	}
	return ys
}
