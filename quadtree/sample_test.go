package quadtree

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleStride(t *testing.T) {
	img := solid(image.Rect(0, 0, 10, 10), color.RGBA{R: 1, G: 2, B: 3, A: 255})

	s := Sample(img, Region{Width: 10, Height: 10}, 3)
	require.Equal(t, 16, s.Len())

	s = Sample(img, Region{X: 2, Y: 2, Width: 3, Height: 3}, 25)
	require.Equal(t, 1, s.Len())
	require.Equal(t, []float64{1}, s.R)
	require.Equal(t, []float64{2}, s.G)
	require.Equal(t, []float64{3}, s.B)
}

func TestSampleEmpty(t *testing.T) {
	img := solid(image.Rect(0, 0, 4, 4), color.White)

	require.Zero(t, Sample(img, Region{Width: 0, Height: 4}, 1).Len())
	require.Zero(t, Sample(img, Region{Width: 4, Height: 4}, 0).Len())
	require.Zero(t, Sample(img, Region{X: 8, Y: 8, Width: 4, Height: 4}, 1).Len())
}

func TestSampleDropsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
		}
	}

	s := Sample(img, Region{Width: 2, Height: 2}, 1)
	require.Equal(t, 4, s.Len())
	require.Equal(t, Color{R: 200, G: 100, B: 50}, Average(s))
}

func TestDispersion(t *testing.T) {
	require.Zero(t, Dispersion(Samples{}))

	uniform := Samples{R: []float64{9, 9, 9}, G: []float64{4, 4, 4}, B: []float64{7, 7, 7}}
	require.Zero(t, Dispersion(uniform))

	// red alone varies: population stdev 127.5 averaged over three channels
	s := Samples{R: []float64{0, 255}, G: []float64{10, 10}, B: []float64{20, 20}}
	require.InDelta(t, 42.5, Dispersion(s), 1e-9)

	// a step of one weighs the same on every channel
	red := Samples{R: []float64{0, 2}, G: []float64{0, 0}, B: []float64{0, 0}}
	blue := Samples{R: []float64{0, 0}, G: []float64{0, 0}, B: []float64{0, 2}}
	require.Equal(t, Dispersion(red), Dispersion(blue))
}

func TestShouldSplit(t *testing.T) {
	require.True(t, ShouldSplit(25.1, 25))
	require.False(t, ShouldSplit(25, 25))
	require.False(t, ShouldSplit(0, 0))
}

func TestAverage(t *testing.T) {
	require.Equal(t, Color{}, Average(Samples{}))

	s := Samples{R: []float64{0, 255}, G: []float64{10, 11}, B: []float64{1, 2}}
	require.Equal(t, Color{R: 128, G: 11, B: 2}, Average(s))
}

func TestColorOf(t *testing.T) {
	require.Equal(t, Color{R: 255, G: 255, B: 255}, ColorOf(color.White))
	require.Equal(t, Color{R: 10, G: 20, B: 30}, ColorOf(Color{R: 10, G: 20, B: 30}))
}

func TestColorHex(t *testing.T) {
	require.Equal(t, "#ff8000", Color{R: 255, G: 128}.Hex())
	require.Equal(t, "#000000", Color{}.String())
}
