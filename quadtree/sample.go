package quadtree

import (
	"image"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Samples holds sampled colors split by channel.
type Samples struct {
	R, G, B []float64
}

func (s Samples) Len() int {
	return len(s.R)
}

func (s *Samples) add(c Color) {
	s.R = append(s.R, float64(c.R))
	s.G = append(s.G, float64(c.G))
	s.B = append(s.B, float64(c.B))
}

// Sample reads src every stride pixels across r, in row-major order. Points
// outside the bounds of src are skipped. A non-positive stride yields an
// empty sample.
func Sample(src image.Image, r Region, stride int) Samples {
	var s Samples
	if stride <= 0 || r.Empty() {
		return s
	}

	n := ((r.Width + stride - 1) / stride) * ((r.Height + stride - 1) / stride)
	s.R = make([]float64, 0, n)
	s.G = make([]float64, 0, n)
	s.B = make([]float64, 0, n)

	bounds := src.Bounds()
	for y := r.Y; y < r.Y+r.Height; y += stride {
		for x := r.X; x < r.X+r.Width; x += stride {
			if !(image.Point{X: x, Y: y}).In(bounds) {
				continue
			}
			s.add(ColorOf(src.At(x, y)))
		}
	}
	return s
}

// Dispersion is the mean of the population standard deviations of the red,
// green and blue channels. An empty sample has zero dispersion.
func Dispersion(s Samples) float64 {
	if s.Len() == 0 {
		return 0
	}
	return (stat.PopStdDev(s.R, nil) + stat.PopStdDev(s.G, nil) + stat.PopStdDev(s.B, nil)) / 3
}

func ShouldSplit(dispersion, threshold float64) bool {
	return dispersion > threshold
}

// Average is the per-channel arithmetic mean of s, rounded to the nearest
// channel value.
func Average(s Samples) Color {
	if s.Len() == 0 {
		return Color{}
	}
	return Color{
		R: channel(stat.Mean(s.R, nil)),
		G: channel(stat.Mean(s.G, nil)),
		B: channel(stat.Mean(s.B, nil)),
	}
}

func channel(v float64) uint8 {
	return uint8(max(0, min(255, math.Round(v))))
}
