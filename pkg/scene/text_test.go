package scene

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in string
		ex []string
	}{
		{"Hello", []string{"Hello"}},
		{`Hello\nWorld`, []string{"Hello", "World"}},
		{`a\n\nb`, []string{"a", "", "b"}},
		{"", []string{""}},
	}
	for _, c := range cases {
		if got := SplitLines(c.in); !reflect.DeepEqual(got, c.ex) {
			t.Fatalf("SplitLines(%q) = %q, expected %q", c.in, got, c.ex)
		}
	}
}

func TestDefaultFontSize(t *testing.T) {
	cases := []struct {
		w, h int
		ex   float64
	}{
		{400, 300, 50},
		{1280, 720, 120},
		{100, 400, 16},
	}
	for _, c := range cases {
		if got := DefaultFontSize(c.w, c.h); got != c.ex {
			t.Fatalf("DefaultFontSize(%d, %d) = %g, expected %g", c.w, c.h, got, c.ex)
		}
	}
}

func TestShrinkKeepsFittingSize(t *testing.T) {
	got := Shrink([]string{"Hi"}, 50, 400, 300, 0)
	if got != 50 {
		t.Fatalf("Shrink changed a fitting size to %g", got)
	}
}

func TestShrinkLongText(t *testing.T) {
	lines := []string{"This is a very long placeholder text that cannot fit"}
	got := Shrink(lines, 100, 100, 50, 0)
	if got >= 100 {
		t.Fatalf("Shrink did not reduce the size, got %g", got)
	}
	if got < MinFontSize {
		t.Fatalf("Shrink went below the minimum, got %g", got)
	}
}

func TestShrinkStopsAtMinimum(t *testing.T) {
	// Nothing fits on a 10x10 canvas, so the loop must bottom out.
	got := Shrink([]string{"wwwwwwwwww"}, 64, 10, 10, 0)
	if got != MinFontSize {
		t.Fatalf("Shrink = %g, expected the minimum %d", got, MinFontSize)
	}
}

func TestShrinkCountsRunes(t *testing.T) {
	// Ten two-byte runes occupy ten glyph boxes, not twenty. At size
	// 10 the block is exactly 60px wide and fits a 60px canvas.
	got := Shrink([]string{"éééééééééé"}, 10, 60, 100, 0)
	if got != 10 {
		t.Fatalf("Shrink = %g, expected 10 (line length must count runes)", got)
	}
}

func TestEffectivePadding(t *testing.T) {
	fx := Effects{
		Outline: Outline{Enabled: true, Width: 2.5},
		Shadow:  Shadow{Enabled: true, DX: 1, DY: -3, Blur: 2.2},
	}
	// 10 + ceil(2.5) + ceil(max(1, 3) + 2.2) = 10 + 3 + 6.
	if got := EffectivePadding(10, fx); got != 19 {
		t.Fatalf("EffectivePadding = %g, expected 19", got)
	}
	if got := EffectivePadding(10, Effects{}); got != 10 {
		t.Fatalf("EffectivePadding without effects = %g, expected 10", got)
	}
}

func TestBaselines(t *testing.T) {
	ys := Baselines(2, 10, 100)
	if len(ys) != 2 {
		t.Fatalf("got %d baselines, expected 2", len(ys))
	}
	if ys[0] != 46.5 {
		t.Fatalf("first baseline = %g, expected 46.5", ys[0])
	}
	if ys[1] != 58.5 {
		t.Fatalf("second baseline = %g, expected 58.5", ys[1])
	}
}
