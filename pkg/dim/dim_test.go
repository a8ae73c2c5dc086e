package dim

import (
	"sort"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in string
		ex Size
	}{
		{"1280x720", Size{1280, 720}},
		{"640X480", Size{640, 480}},
		{" 1080p ", Size{1920, 1080}},
		{"og", Size{1200, 630}},
		{"OG", Size{1200, 630}},
		{"square", Size{1080, 1080}},
		{"thumb", Size{320, 180}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.in, err)
		}
		if got != c.ex {
			t.Fatalf("Parse(%q) = %v, expected %v", c.in, got, c.ex)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{"", "1280", "1280x", "x720", "axb", "0x100", "100x-5", "1280x720x2", "8k"}
	for _, in := range cases {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) succeeded, expected error", in)
		}
	}
}

func TestString(t *testing.T) {
	if got := (Size{1200, 630}).String(); got != "1200x630" {
		t.Fatalf("String() = %q, expected \"1200x630\"", got)
	}
}

func TestPresetsSorted(t *testing.T) {
	ps := Presets()
	if len(ps) != 8 {
		t.Fatalf("got %d presets, expected 8", len(ps))
	}
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("presets not sorted: %v", names)
	}
	for _, p := range ps {
		got, err := Parse(p.Name)
		if err != nil {
			t.Fatalf("preset %q does not parse: %v", p.Name, err)
		}
		if got != p.Size {
			t.Fatalf("preset %q = %v, expected %v", p.Name, got, p.Size)
		}
	}
}
