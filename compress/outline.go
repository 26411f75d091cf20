package compress

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"quadpic/quadtree"
)

// drawOutlines paints a one pixel border along the inner edge of every leaf.
func drawOutlines(dst draw.Image, leaves []*quadtree.Node, col color.Color) {
	src := image.NewUniform(col)
	for _, n := range leaves {
		r := n.Region.Rect()
		if r.Empty() {
			continue
		}
		for _, edge := range []image.Rectangle{
			image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
			image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
			image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
			image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
		} {
			draw.Draw(dst, edge, src, image.Point{}, draw.Src)
		}
	}
}
