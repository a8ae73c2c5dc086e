package dim

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Size is a canvas size in pixels.
type Size struct {
	W, H int
}

// Preset pairs a preset name with its size.
type Preset struct {
	Name string
	Size Size
}

// presets maps shorthand names to common canvas sizes.
var presets = map[string]Size{
	"720p":   {W: 1280, H: 720},
	"1080p":  {W: 1920, H: 1080},
	"4k":     {W: 3840, H: 2160},
	"square": {W: 1080, H: 1080},
	"og":     {W: 1200, H: 630},
	"banner": {W: 1500, H: 500},
	"avatar": {W: 512, H: 512},
	"thumb":  {W: 320, H: 180},
}

// Parse resolves a size string, either a preset name like "og" or a
// "WxH" pair like "1280x720". Both dimensions must be positive.
func Parse(s string) (Size, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if sz, ok := presets[key]; ok {
		return sz, nil
	}
	parts := strings.Split(key, "x")
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("invalid size %q, want a preset name or WxH", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return Size{}, fmt.Errorf("invalid width in size %q", s)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return Size{}, fmt.Errorf("invalid height in size %q", s)
	}
	if w <= 0 || h <= 0 {
		return Size{}, fmt.Errorf("size %q must be positive", s)
	}
	return Size{W: w, H: h}, nil
}

// String formats the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Presets returns all named presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for name, sz := range presets {
		out = append(out, Preset{Name: name, Size: sz})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
