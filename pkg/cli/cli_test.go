package cli

import (
	"testing"

	"github.com/Fepozopo/phold/pkg/preset"
)

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }
func iptr(v int) *int         { return &v }

func TestApplyPresetFlagsWin(t *testing.T) {
	o := genOptions{bg: "#111111", scale: 1}
	set := map[string]bool{"bg": true}
	p := &preset.Options{
		BG:       "#222222",
		Size:     "og",
		Shadow:   bptr(true),
		ShadowDX: fptr(5),
		Scale:    iptr(3),
	}
	applyPreset(&o, set, p)
	if o.bg != "#111111" {
		t.Fatalf("explicit -bg overridden by preset: %q", o.bg)
	}
	if o.size != "og" {
		t.Fatalf("preset size not applied: %q", o.size)
	}
	if !o.shadow {
		t.Fatalf("preset shadow not applied")
	}
	if o.shadowDX != 5 || !set["shadow-dx"] {
		t.Fatalf("preset shadow-dx not applied as explicit: dx=%v set=%v", o.shadowDX, set["shadow-dx"])
	}
	if o.scale != 3 {
		t.Fatalf("preset scale not applied: %d", o.scale)
	}
}

func TestApplyPresetFromFile(t *testing.T) {
	p, err := preset.ParseString("size og\nbg-linear #111827 #0ea5e9 135\nshadow on\nshadow-dy 0\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	var o genOptions
	set := map[string]bool{}
	applyPreset(&o, set, p)
	if o.size != "og" || o.bgLinear != "#111827,#0ea5e9,135" {
		t.Fatalf("preset values not applied: %+v", o)
	}
	if !o.shadow || o.shadowDY != 0 || !set["shadow-dy"] {
		t.Fatalf("shadow directives not applied: shadow=%v dy=%v set=%v", o.shadow, o.shadowDY, set["shadow-dy"])
	}
	fx := o.effects(set)
	if fx.ShadowDY == nil || *fx.ShadowDY != 0 {
		t.Fatalf("explicit zero shadow-dy did not survive as a pointer")
	}
}

func TestEffectsPointerFields(t *testing.T) {
	o := genOptions{outline: true, outlineWidth: 3, shadowDX: 1}
	set := map[string]bool{"outline-width": true}
	fx := o.effects(set)
	if !fx.Outline {
		t.Fatalf("outline flag lost")
	}
	if fx.OutlineWidth == nil || *fx.OutlineWidth != 3 {
		t.Fatalf("explicit outline width not passed: %v", fx.OutlineWidth)
	}
	if fx.ShadowDX != nil {
		t.Fatalf("unset shadow-dx should stay nil, got %v", *fx.ShadowDX)
	}
}

func TestSizeLabel(t *testing.T) {
	tests := []struct {
		o    genOptions
		want string
	}{
		{genOptions{size: "og"}, "1200x630"},
		{genOptions{size: "640x480"}, "640x480"},
		{genOptions{width: 800, height: 400}, "800x400"},
		{genOptions{size: "bogus"}, ""},
		{genOptions{}, ""},
	}
	for _, tc := range tests {
		if got := sizeLabel(&tc.o); got != tc.want {
			t.Fatalf("sizeLabel(%+v) = %q, want %q", tc.o, got, tc.want)
		}
	}
}
