package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/Fepozopo/phold/pkg/dim"
	"github.com/Fepozopo/phold/pkg/preset"
	"github.com/Fepozopo/phold/pkg/raster"
	"github.com/Fepozopo/phold/pkg/scene"
)

const (
	defaultSize = "1280x720"
	defaultBG   = "#cccccc"
)

// RunCLI is the command line entry point.
func RunCLI() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "presets":
		listPresets()
	case "version", "-version", "--version":
		fmt.Printf("phold %s\n", Version)
	case "update":
		if err := CheckForUpdates(); err != nil {
			fatal(err)
		}
	case "help", "-help", "--help":
		printUsage()
	default:
		// Default: generate mode (all flags on root).
		if err := runGenerate(os.Args[1:]); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// genOptions mirrors the generate-mode flag surface.
type genOptions struct {
	output string
	size   string
	width  int
	height int

	bg       string
	bgLinear string
	bgRadial string

	text      string
	textColor string

	font       string
	fontSize   float64
	fontWeight string

	padding float64
	mask    string

	outline      bool
	outlineColor string
	outlineWidth float64

	shadow        bool
	shadowColor   string
	shadowDX      float64
	shadowDY      float64
	shadowBlur    float64
	shadowOpacity float64

	scale      int
	presetFile string
	preview    bool
}

func runGenerate(args []string) error {
	var o genOptions
	fs := flag.NewFlagSet("phold", flag.ExitOnError)

	fs.StringVar(&o.output, "o", "", "Output file (.png, .jpg or .gif)")
	fs.StringVar(&o.output, "output", "", "Output file (.png, .jpg or .gif)")
	fs.StringVar(&o.size, "size", "", "Canvas size: WxH or a preset name")
	fs.IntVar(&o.width, "w", 0, "Canvas width in pixels")
	fs.IntVar(&o.width, "width", 0, "Canvas width in pixels")
	fs.IntVar(&o.height, "h", 0, "Canvas height in pixels")
	fs.IntVar(&o.height, "height", 0, "Canvas height in pixels")
	fs.StringVar(&o.bg, "bg", "", "Solid background color (hex)")
	fs.StringVar(&o.bgLinear, "bg-linear", "", "Linear gradient background: hex1,hex2,angleDeg")
	fs.StringVar(&o.bgRadial, "bg-radial", "", "Radial gradient background: inner,outer[,cx,cy,r]")
	fs.StringVar(&o.text, "text", "", "Text to draw; \\n breaks lines")
	fs.StringVar(&o.textColor, "text-color", "", "Text color (hex)")
	fs.StringVar(&o.font, "font", "", "TTF/OTF font file")
	fs.Float64Var(&o.fontSize, "font-size", 0, "Font size in pixels")
	fs.StringVar(&o.fontWeight, "font-weight", "regular", "Font weight: regular or bold")
	fs.Float64Var(&o.padding, "padding", 0, "Minimum padding around the text block in pixels")
	fs.StringVar(&o.mask, "mask", "", "Canvas mask: circle, rounded[:R] or squircle[:R]")
	fs.BoolVar(&o.outline, "outline", false, "Draw a text outline")
	fs.StringVar(&o.outlineColor, "outline-color", "", "Outline color (hex)")
	fs.Float64Var(&o.outlineWidth, "outline-width", 0, "Outline width in pixels")
	fs.BoolVar(&o.shadow, "shadow", false, "Draw a text drop shadow")
	fs.StringVar(&o.shadowColor, "shadow-color", "", "Shadow color (hex)")
	fs.Float64Var(&o.shadowDX, "shadow-dx", 0, "Shadow x offset in pixels")
	fs.Float64Var(&o.shadowDY, "shadow-dy", 0, "Shadow y offset in pixels")
	fs.Float64Var(&o.shadowBlur, "shadow-blur", 0, "Shadow blur radius in pixels")
	fs.Float64Var(&o.shadowOpacity, "shadow-opacity", 0, "Shadow opacity 0..1")
	fs.IntVar(&o.scale, "scale", 1, "Supersampling factor 1..8")
	fs.StringVar(&o.presetFile, "f", "", "Preset file (.phold)")
	fs.BoolVar(&o.preview, "preview", false, "Preview the result in the terminal")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (see 'phold help')", fs.Arg(0))
	}

	// Record which flags were given so preset/env values only fill gaps and
	// the engine can tell explicit zeros from unset options.
	set := make(map[string]bool)
	alias := map[string]string{"o": "output", "w": "width", "h": "height"}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := alias[name]; ok {
			name = long
		}
		set[name] = true
	})

	if o.presetFile != "" {
		p, err := preset.ParseFile(o.presetFile)
		if err != nil {
			return fmt.Errorf("preset %s: %w", o.presetFile, err)
		}
		applyPreset(&o, set, p)
	}

	// Environment defaults; flags and preset values win.
	if o.font == "" {
		o.font = os.Getenv("PHOLD_FONT")
	}
	if o.size == "" && o.width == 0 && o.height == 0 {
		if env := os.Getenv("PHOLD_SIZE"); env != "" {
			o.size = env
		} else {
			o.size = defaultSize
		}
	}
	if o.bg == "" && o.bgLinear == "" && o.bgRadial == "" {
		o.bg = defaultBG
	}
	if o.text == "" && !set["text"] {
		o.text = sizeLabel(&o)
	}

	if o.output == "" && !o.preview {
		return fmt.Errorf("output file is required (use -o, or -preview for a terminal-only preview)")
	}

	spec := scene.Spec{
		Width:     o.width,
		Height:    o.height,
		Size:      o.size,
		BG:        o.bg,
		BGLinear:  o.bgLinear,
		BGRadial:  o.bgRadial,
		Text:      o.text,
		TextColor: o.textColor,
		Font:      scene.FontConfig{Family: o.font, Weight: o.fontWeight, Size: o.fontSize},
		Padding:   o.padding,
		Mask:      o.mask,
		Effects:   o.effects(set),
	}

	sc, err := scene.Compose(spec)
	if err != nil {
		return err
	}
	img, err := raster.Render(sc, raster.Options{Scale: o.scale})
	if err != nil {
		return err
	}

	if o.output != "" {
		if err := SaveImage(o.output, img); err != nil {
			return fmt.Errorf("save %s: %w", o.output, err)
		}
		fmt.Printf("Done: %s (%dx%d)\n", o.output, sc.Width, sc.Height)
	}
	if o.preview {
		if err := PreviewImage(img); err != nil {
			if o.output == "" {
				return fmt.Errorf("preview: %w", err)
			}
			fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		}
	}
	return nil
}

// sizeLabel renders the effective canvas size as "WxH" for the default
// placeholder text.
func sizeLabel(o *genOptions) string {
	if o.size != "" {
		d, err := dim.Parse(o.size)
		if err != nil {
			return ""
		}
		return d.String()
	}
	if o.width > 0 && o.height > 0 {
		return dim.Size{W: o.width, H: o.height}.String()
	}
	return ""
}

// applyPreset copies preset values into o for every option the user did not
// set on the command line. Adopted numeric effect values are recorded in set
// so they reach the engine as explicitly-given pointers.
func applyPreset(o *genOptions, set map[string]bool, p *preset.Options) {
	if !set["output"] && p.Output != "" {
		o.output = p.Output
	}
	if !set["size"] && p.Size != "" {
		o.size = p.Size
	}
	if !set["width"] && p.Width != nil {
		o.width = *p.Width
	}
	if !set["height"] && p.Height != nil {
		o.height = *p.Height
	}
	if !set["bg"] && p.BG != "" {
		o.bg = p.BG
	}
	if !set["bg-linear"] && p.BGLinear != "" {
		o.bgLinear = p.BGLinear
	}
	if !set["bg-radial"] && p.BGRadial != "" {
		o.bgRadial = p.BGRadial
	}
	if !set["text"] && p.Text != "" {
		o.text = p.Text
	}
	if !set["text-color"] && p.TextColor != "" {
		o.textColor = p.TextColor
	}
	if !set["font"] && p.Font != "" {
		o.font = p.Font
	}
	if !set["font-size"] && p.FontSize != nil {
		o.fontSize = *p.FontSize
	}
	if !set["font-weight"] && p.FontWeight != "" {
		o.fontWeight = p.FontWeight
	}
	if !set["padding"] && p.Padding != nil {
		o.padding = *p.Padding
	}
	if !set["mask"] && p.Mask != "" {
		o.mask = p.Mask
	}
	if !set["outline"] && p.Outline != nil {
		o.outline = *p.Outline
	}
	if !set["outline-color"] && p.OutlineColor != "" {
		o.outlineColor = p.OutlineColor
	}
	if !set["outline-width"] && p.OutlineWidth != nil {
		o.outlineWidth = *p.OutlineWidth
		set["outline-width"] = true
	}
	if !set["shadow"] && p.Shadow != nil {
		o.shadow = *p.Shadow
	}
	if !set["shadow-color"] && p.ShadowColor != "" {
		o.shadowColor = p.ShadowColor
	}
	if !set["shadow-dx"] && p.ShadowDX != nil {
		o.shadowDX = *p.ShadowDX
		set["shadow-dx"] = true
	}
	if !set["shadow-dy"] && p.ShadowDY != nil {
		o.shadowDY = *p.ShadowDY
		set["shadow-dy"] = true
	}
	if !set["shadow-blur"] && p.ShadowBlur != nil {
		o.shadowBlur = *p.ShadowBlur
		set["shadow-blur"] = true
	}
	if !set["shadow-opacity"] && p.ShadowOpacity != nil {
		o.shadowOpacity = *p.ShadowOpacity
		set["shadow-opacity"] = true
	}
	if !set["scale"] && p.Scale != nil {
		o.scale = *p.Scale
	}
}

// effects builds the engine-facing effect options. The pointer fields carry
// only values that were given explicitly, so the effects resolver can tell
// an explicit zero from an unset option.
func (o *genOptions) effects(set map[string]bool) scene.EffectOptions {
	fx := scene.EffectOptions{
		Outline:      o.outline,
		OutlineColor: o.outlineColor,
		Shadow:       o.shadow,
		ShadowColor:  o.shadowColor,
	}
	if set["outline-width"] {
		fx.OutlineWidth = &o.outlineWidth
	}
	if set["shadow-dx"] {
		fx.ShadowDX = &o.shadowDX
	}
	if set["shadow-dy"] {
		fx.ShadowDY = &o.shadowDY
	}
	if set["shadow-blur"] {
		fx.ShadowBlur = &o.shadowBlur
	}
	if set["shadow-opacity"] {
		fx.ShadowOpacity = &o.shadowOpacity
	}
	return fx
}

func listPresets() {
	fmt.Println("Size presets:")
	for _, p := range dim.Presets() {
		fmt.Printf("  %-8s %s\n", p.Name, p.Size)
	}
}

func printUsage() {
	fmt.Print(`phold — procedural placeholder image generator

USAGE:
    phold -o <file> [options]
    phold presets
    phold version
    phold update
    phold help

OUTPUT:
    -o, --output <path>     Output file; extension picks PNG (default), JPEG or GIF
    -preview                Render a preview into the terminal (kitty/iTerm2/sixel/chafa)
    -scale <k>              Supersample at k x and downsample, 1..8 (default: 1)

CANVAS:
    -size <WxH|name>        Canvas size or preset name (default: 1280x720, env PHOLD_SIZE)
    -w, --width <px>        Canvas width (alternative to -size)
    -h, --height <px>       Canvas height (alternative to -size)
    -mask <spec>            circle, rounded[:R] or squircle[:R]; R in px or %

BACKGROUND (pick one):
    -bg <hex>               Solid color (default: #cccccc)
    -bg-linear <spec>       hex1,hex2,angleDeg (CSS angle: 0 up, clockwise)
    -bg-radial <spec>       inner,outer[,cx,cy,r]; cx/cy/r in px or %

TEXT:
    -text <s>               Text to draw, \n breaks lines (default: the canvas size)
    -text-color <hex>       Text color (default: auto contrast vs background)
    -font <path>            TTF/OTF file (default: embedded Go font, env PHOLD_FONT)
    -font-size <px>         Initial size, shrinks to fit (default: min(w,h)/6)
    -font-weight <w>        regular or bold (default: regular)
    -padding <px>           Minimum space around the text block

EFFECTS:
    -outline                Text outline (width defaults from font size)
    -outline-color <hex>    Outline color
    -outline-width <px>     Outline width
    -shadow                 Drop shadow under the text
    -shadow-color <hex>     Shadow color
    -shadow-dx <px>         Shadow x offset (default: 0)
    -shadow-dy <px>         Shadow y offset (default: 2)
    -shadow-blur <px>       Shadow blur radius
    -shadow-opacity <v>     Shadow opacity 0..1 (default: 0.35)

PRESET FILES:
    -f <path>               Load a .phold preset file; explicit flags win

EXAMPLES:
    phold -o out.png
    phold -o card.png -size og -bg-linear "#111827,#0ea5e9,135" -text "Hello\nWorld"
    phold -o avatar.png -size avatar -mask circle -bg "#0ea5e9" -text "AB"
    phold -o social.png -f card.phold -preview
`)
}
