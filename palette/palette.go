package palette

import (
	"fmt"
	"image/color"
	colorpalette "image/color/palette"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"quadpic/quadtree"
)

var named = map[string][]string{
	"bw": {"#000000", "#ffffff"},
	"spectra6": {
		"#000000", "#ffffff", "#ff0000", "#ffff00", "#0000ff", "#00ff00",
	},
	"vga16": {
		"#000000", "#0000aa", "#00aa00", "#00aaaa", "#aa0000", "#aa00aa", "#aa5500", "#aaaaaa",
		"#555555", "#5555ff", "#55ff55", "#55ffff", "#ff5555", "#ff55ff", "#ffff55", "#ffffff",
	},
}

// LoadPalette resolves a built-in palette name (bw, gray16, vga16, spectra6,
// websafe, plan9), a comma separated list of hex colors, or the path of a
// RIFF PAL file.
func LoadPalette(name string) (color.Palette, error) {
	switch name {
	case "":
		return nil, fmt.Errorf("empty palette name")
	case "gray16":
		pal := make(color.Palette, 16)
		for i := range pal {
			pal[i] = color.Gray{Y: uint8(i * 17)}
		}
		return pal, nil
	case "websafe":
		return colorpalette.WebSafe, nil
	case "plan9":
		return colorpalette.Plan9, nil
	}

	if hexes, ok := named[name]; ok {
		return ParseHex(hexes)
	}
	if strings.HasPrefix(name, "#") {
		return ParseHex(strings.Split(name, ","))
	}

	return loadFile(name)
}

// ParseHex builds a palette from #rrggbb or #rgb strings.
func ParseHex(hexes []string) (color.Palette, error) {
	pal := make(color.Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseColor(strings.TrimSpace(h))
		if err != nil {
			return nil, err
		}
		pal = append(pal, c)
	}
	return pal, nil
}

// ParseColor reads a #rrggbb or #rgb color.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func loadFile(path string) (color.Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open palette %q: %w", path, err)
	}
	defer f.Close()

	pals, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", path, err)
	}

	var res color.Palette
	for _, pal := range pals {
		res = append(res, pal...)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", path)
	}
	return res, nil
}

// Sink replaces every fill color with its closest palette entry before
// passing the fill on.
type Sink struct {
	Next    quadtree.Sink
	Palette color.Palette
}

func (s Sink) Fill(r quadtree.Region, c quadtree.Color) {
	if len(s.Palette) > 0 {
		c = quadtree.ColorOf(s.Palette.Convert(c))
	}
	s.Next.Fill(r, c)
}
