package quadtree

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB triple.
type Color struct {
	R, G, B uint8
}

var _ color.Color = Color{}

func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex formats c as #rrggbb.
func (c Color) Hex() string {
	col, _ := colorful.MakeColor(c)
	return col.Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// ColorOf drops the alpha channel of c after un-premultiplying it.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}
