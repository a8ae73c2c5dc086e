// Package preset parses .phold preset files, a line-directive format
// that mirrors the generator's command line flags.
package preset

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	presetLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Dim", Pattern: `\d+x\d+`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)%?`},
		{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_./\-]*`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(presetLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// File is the parsed AST: one directive per line. Comments start with
// '#' and run to the end of the line.
type File struct {
	Directives []*Directive `parser:"Newline* ( @@ Newline* )*"`
}

// Directive is one named line with its arguments.
type Directive struct {
	Pos  lexer.Position `parser:""`
	Name string         `parser:"@Ident"`
	Args []*Arg         `parser:"@@*"`
}

// Arg is a single directive argument.
type Arg struct {
	Str    *StringLiteral `parser:"  @String"`
	Color  *string        `parser:"| @Color"`
	Dim    *string        `parser:"| @Dim"`
	Number *string        `parser:"| @Number"`
	Word   *string        `parser:"| @Ident"`
}

// Text returns the argument's textual value regardless of its token
// kind.
func (a *Arg) Text() string {
	switch {
	case a.Str != nil:
		return string(*a.Str)
	case a.Color != nil:
		return *a.Color
	case a.Dim != nil:
		return *a.Dim
	case a.Number != nil:
		return *a.Number
	case a.Word != nil:
		return *a.Word
	}
	return ""
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Options is the flat set of generation options a preset file can
// carry. Nil pointers and empty strings mean the directive was absent;
// when a directive repeats, the last one wins.
type Options struct {
	Output string
	Size   string
	Width  *int
	Height *int

	BG       string
	BGLinear string
	BGRadial string

	Text      string
	TextColor string

	Font       string
	FontSize   *float64
	FontWeight string

	Padding *float64
	Mask    string

	Outline      *bool
	OutlineColor string
	OutlineWidth *float64

	Shadow        *bool
	ShadowColor   string
	ShadowDX      *float64
	ShadowDY      *float64
	ShadowBlur    *float64
	ShadowOpacity *float64

	Scale *int
}

// Parse reads a preset from r.
func Parse(r io.Reader) (*Options, error) {
	f, err := fileParser.Parse("", r)
	if err != nil {
		return nil, err
	}
	return f.options()
}

// ParseString parses a preset from a string.
func ParseString(input string) (*Options, error) {
	f, err := fileParser.ParseString("", input)
	if err != nil {
		return nil, err
	}
	return f.options()
}

// ParseFile loads and parses a preset file.
func ParseFile(path string) (*Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// options walks the directive list and fills an Options value.
func (f *File) options() (*Options, error) {
	o := &Options{}
	for _, d := range f.Directives {
		if err := d.apply(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (d *Directive) apply(o *Options) error {
	switch strings.ToLower(d.Name) {
	case "output":
		s, err := d.oneArg()
		if err != nil {
			return err
		}
		o.Output = s
	case "size":
		s, err := d.oneArg()
		if err != nil {
			return err
		}
		o.Size = s
	case "width":
		n, err := d.intArg()
		if err != nil {
			return err
		}
		o.Width = &n
	case "height":
		n, err := d.intArg()
		if err != nil {
			return err
		}
		o.Height = &n
	case "bg":
		s, err := d.oneArg()
		if err != nil {
			return err
		}
		o.BG = s
	case "bg-linear":
		if err := d.wantArgs(3, 3); err != nil {
			return err
		}
		o.BGLinear = d.joinArgs()
	case "bg-radial":
		if err := d.wantArgs(2, 5); err != nil {
			return err
		}
		o.BGRadial = d.joinArgs()
	case "text":
		s, err := d.oneArg()
		if err != nil {
			return err
		}
		o.Text = s
	case "text-color":
		s, err := d.oneArg()
		if err != nil {
			return err
		}
		o.TextColor = s
	case "font":
		s, err := d.oneArg()
		if err != nil {
			return err
		}
		o.Font = s
	case "font-size":
		v, err := d.floatArg()
		if err != nil {
			return err
		}
		o.FontSize = &v
	case "font-weight":
		s, err := d.oneArg()
		if err != nil {
			return err
		}
		o.FontWeight = s
	case "padding":
		v, err := d.floatArg()
		if err != nil {
			return err
		}
		o.Padding = &v
	case "mask":
		if err := d.wantArgs(1, 2); err != nil {
			return err
		}
		s := d.Args[0].Text()
		if len(d.Args) == 2 {
			s += ":" + d.Args[1].Text()
		}
		o.Mask = s
	case "outline":
		v, err := d.toggleArg()
		if err != nil {
			return err
		}
		o.Outline = &v
	case "outline-color":
		s, err := d.oneArg()
		if err != nil {
			return err
		}
		o.OutlineColor = s
	case "outline-width":
		v, err := d.floatArg()
		if err != nil {
			return err
		}
		o.OutlineWidth = &v
	case "shadow":
		v, err := d.toggleArg()
		if err != nil {
			return err
		}
		o.Shadow = &v
	case "shadow-color":
		s, err := d.oneArg()
		if err != nil {
			return err
		}
		o.ShadowColor = s
	case "shadow-dx":
		v, err := d.floatArg()
		if err != nil {
			return err
		}
		o.ShadowDX = &v
	case "shadow-dy":
		v, err := d.floatArg()
		if err != nil {
			return err
		}
		o.ShadowDY = &v
	case "shadow-blur":
		v, err := d.floatArg()
		if err != nil {
			return err
		}
		o.ShadowBlur = &v
	case "shadow-opacity":
		v, err := d.floatArg()
		if err != nil {
			return err
		}
		o.ShadowOpacity = &v
	case "scale":
		n, err := d.intArg()
		if err != nil {
			return err
		}
		o.Scale = &n
	default:
		return fmt.Errorf("line %d: unknown directive %q", d.Pos.Line, d.Name)
	}
	return nil
}

func (d *Directive) wantArgs(min, max int) error {
	if len(d.Args) < min || len(d.Args) > max {
		if min == max {
			return fmt.Errorf("line %d: %s wants %d argument(s), got %d", d.Pos.Line, d.Name, min, len(d.Args))
		}
		return fmt.Errorf("line %d: %s wants %d to %d arguments, got %d", d.Pos.Line, d.Name, min, max, len(d.Args))
	}
	return nil
}

func (d *Directive) oneArg() (string, error) {
	if err := d.wantArgs(1, 1); err != nil {
		return "", err
	}
	return d.Args[0].Text(), nil
}

func (d *Directive) intArg() (int, error) {
	s, err := d.oneArg()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s wants an integer, got %q", d.Pos.Line, d.Name, s)
	}
	return n, nil
}

func (d *Directive) floatArg() (float64, error) {
	s, err := d.oneArg()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s wants a number, got %q", d.Pos.Line, d.Name, s)
	}
	return v, nil
}

// toggleArg reads an on/off argument. A bare directive means on.
func (d *Directive) toggleArg() (bool, error) {
	if err := d.wantArgs(0, 1); err != nil {
		return false, err
	}
	if len(d.Args) == 0 {
		return true, nil
	}
	switch strings.ToLower(d.Args[0].Text()) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("line %d: %s wants on or off, got %q", d.Pos.Line, d.Name, d.Args[0].Text())
}

func (d *Directive) joinArgs() string {
	parts := make([]string, len(d.Args))
	for i, a := range d.Args {
		parts[i] = a.Text()
	}
	return strings.Join(parts, ",")
}
