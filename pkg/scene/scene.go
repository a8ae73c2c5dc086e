package scene

import (
	"fmt"

	"github.com/Fepozopo/phold/pkg/dim"
)

// FontConfig identifies the typeface for rendering. Family is a font
// file path, empty for the embedded face. Size is the starting point
// for auto-shrink; zero derives it from the canvas.
type FontConfig struct {
	Family string
	Weight string
	Size   float64
}

// Spec is the full description of one image to generate. The string
// fields mirror the command line surface; Compose parses and validates
// them exactly once.
type Spec struct {
	Width  int
	Height int
	Size   string

	BG       string
	BGLinear string
	BGRadial string

	Text      string
	TextColor string
	Font      FontConfig
	Padding   float64

	Mask string

	Effects EffectOptions
}

// Scene is the fully resolved description of one output image,
// everything the rasterizer needs and nothing optional. A Scene is
// never mutated after Compose returns it.
type Scene struct {
	Width  int
	Height int

	Background Background
	MaskPath   *Path

	Lines     []string
	Font      FontConfig
	TextColor Color
	Baselines []float64
	Effects   Effects
}

// Compose validates a spec and resolves it into a Scene. It is a pure
// function: the same spec always produces the same scene.
func Compose(spec Spec) (*Scene, error) {
	width, height := spec.Width, spec.Height
	if spec.Size != "" {
		d, err := dim.Parse(spec.Size)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDimension, err)
		}
		if width != 0 && width != d.W {
			return nil, fmt.Errorf("%w: width %d conflicts with size %q", ErrConflictingOptions, width, spec.Size)
		}
		if height != 0 && height != d.H {
			return nil, fmt.Errorf("%w: height %d conflicts with size %q", ErrConflictingOptions, height, spec.Size)
		}
		width, height = d.W, d.H
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalidDimension, width, height)
	}
	if spec.Padding < 0 {
		return nil, fmt.Errorf("%w: negative padding %g", ErrInvalidDimension, spec.Padding)
	}
	if spec.Font.Size < 0 {
		return nil, fmt.Errorf("%w: font size %g", ErrInvalidDimension, spec.Font.Size)
	}

	bg, err := resolveBackground(spec, width, height)
	if err != nil {
		return nil, err
	}

	auto := autoContrast(bg)
	textColor := auto
	if spec.TextColor != "" {
		if textColor, err = ParseHex(spec.TextColor); err != nil {
			return nil, err
		}
	}

	mask, err := ParseMask(spec.Mask, width, height)
	if err != nil {
		return nil, err
	}

	fontSize := spec.Font.Size
	if fontSize == 0 {
		fontSize = DefaultFontSize(width, height)
	}
	if fontSize < MinFontSize {
		fontSize = MinFontSize
	}

	fx, err := ResolveEffects(spec.Effects, fontSize, auto, textColor)
	if err != nil {
		return nil, err
	}

	sc := &Scene{
		Width:      width,
		Height:     height,
		Background: bg,
		MaskPath:   mask.Path(width, height),
		Font:       FontConfig{Family: spec.Font.Family, Weight: spec.Font.Weight, Size: fontSize},
		TextColor:  textColor,
		Effects:    fx,
	}
	if spec.Text != "" {
		sc.Lines = SplitLines(spec.Text)
		effPad := EffectivePadding(spec.Padding, fx)
		sc.Font.Size = Shrink(sc.Lines, fontSize, width, height, effPad)
		sc.Baselines = Baselines(len(sc.Lines), sc.Font.Size, height)
	}
	return sc, nil
}

// resolveBackground parses whichever background form spec carries.
// Exactly one of the three forms must be present.
func resolveBackground(spec Spec, width, height int) (Background, error) {
	count := 0
	for _, s := range []string{spec.BG, spec.BGLinear, spec.BGRadial} {
		if s != "" {
			count++
		}
	}
	if count > 1 {
		return nil, fmt.Errorf("%w: more than one background given", ErrConflictingOptions)
	}
	switch {
	case spec.BG != "":
		c, err := ParseHex(spec.BG)
		if err != nil {
			return nil, err
		}
		return Solid{Color: c}, nil
	case spec.BGLinear != "":
		return ParseLinear(spec.BGLinear)
	case spec.BGRadial != "":
		return ParseRadial(spec.BGRadial, width, height)
	}
	return nil, fmt.Errorf("%w: no background given", ErrInvalidBackgroundSpec)
}

// autoContrast picks the auto text color for any background kind.
func autoContrast(bg Background) Color {
	if s, ok := bg.(Solid); ok {
		return AutoTextColor(s.Color)
	}
	return AutoTextColorGradient(bg)
}
