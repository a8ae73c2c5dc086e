package scene

import "math"

// EffectOptions carries the raw effect inputs. Nil pointer fields mean
// the value was not given and ResolveEffects derives it from the font
// size; empty color strings fall back to the derived effect color.
type EffectOptions struct {
	Outline      bool
	OutlineColor string
	OutlineWidth *float64

	Shadow        bool
	ShadowColor   string
	ShadowDX      *float64
	ShadowDY      *float64
	ShadowBlur    *float64
	ShadowOpacity *float64
}

// Outline is a resolved text outline.
type Outline struct {
	Enabled bool
	Color   Color
	Width   float64
}

// Shadow is a resolved drop shadow.
type Shadow struct {
	Enabled bool
	Color   Color
	DX, DY  float64
	Blur    float64
	Opacity float64
}

// Effects holds the resolved outline and shadow for one scene.
type Effects struct {
	Outline Outline
	Shadow  Shadow
}

// ResolveEffects turns raw effect options into concrete parameters.
// Defaults scale with the font size: outline width is 8% of it and
// shadow blur 12%, each at least 1px. The default effect color is the
// auto-contrast color for the background, flipped to its opposite when
// that already is the text color so effects stay visible. Explicit
// values win field by field; an explicit zero offset is respected.
func ResolveEffects(opts EffectOptions, fontSize float64, autoColor, textColor Color) (Effects, error) {
	def := autoColor
	if def == textColor {
		if def == White {
			def = Black
		} else {
			def = White
		}
	}

	var fx Effects
	if opts.Outline {
		o := Outline{Enabled: true, Color: def}
		if opts.OutlineColor != "" {
			c, err := ParseHex(opts.OutlineColor)
			if err != nil {
				return Effects{}, err
			}
			o.Color = c
		}
		o.Width = math.Max(1, math.Round(fontSize*0.08))
		if opts.OutlineWidth != nil {
			o.Width = math.Max(0, *opts.OutlineWidth)
		}
		fx.Outline = o
	}
	if opts.Shadow {
		s := Shadow{Enabled: true, Color: def, DX: 0, DY: 2, Opacity: 0.35}
		if opts.ShadowColor != "" {
			c, err := ParseHex(opts.ShadowColor)
			if err != nil {
				return Effects{}, err
			}
			s.Color = c
		}
		s.Blur = math.Max(1, math.Round(fontSize*0.12))
		if opts.ShadowDX != nil {
			s.DX = *opts.ShadowDX
		}
		if opts.ShadowDY != nil {
			s.DY = *opts.ShadowDY
		}
		if opts.ShadowBlur != nil {
			s.Blur = math.Max(0, *opts.ShadowBlur)
		}
		if opts.ShadowOpacity != nil {
			s.Opacity = clamp01(*opts.ShadowOpacity)
		}
		fx.Shadow = s
	}
	return fx, nil
}
