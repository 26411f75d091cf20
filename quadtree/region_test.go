package quadtree

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRegionRejectsEmpty(t *testing.T) {
	_, err := NewRegion(0, 0, 0, 10)
	require.ErrorIs(t, err, ErrInvalidRegion)

	_, err = NewRegion(0, 0, 10, -1)
	require.ErrorIs(t, err, ErrInvalidRegion)

	_, err = NewRegion(-1, 0, 10, 10)
	require.ErrorIs(t, err, ErrInvalidRegion)

	r, err := NewRegion(3, 4, 5, 6)
	require.NoError(t, err)
	require.Equal(t, image.Rect(3, 4, 8, 10), r.Rect())
	require.Equal(t, 30, r.Area())
}

func TestQuarterEvenHalves(t *testing.T) {
	r := Region{X: 10, Y: 20, Width: 64, Height: 32}
	q := r.Quarter()

	require.Equal(t, Region{X: 42, Y: 20, Width: 32, Height: 16}, q[NE])
	require.Equal(t, Region{X: 10, Y: 20, Width: 32, Height: 16}, q[NW])
	require.Equal(t, Region{X: 10, Y: 36, Width: 32, Height: 16}, q[SW])
	require.Equal(t, Region{X: 42, Y: 36, Width: 32, Height: 16}, q[SE])
}

func TestQuarterTilesParent(t *testing.T) {
	sizes := []image.Point{{1, 1}, {2, 2}, {3, 5}, {7, 4}, {16, 16}, {17, 9}, {1, 6}}

	for _, size := range sizes {
		r := Region{X: 3, Y: 2, Width: size.X, Height: size.Y}
		q := r.Quarter()

		area := 0
		for i := range q {
			area += q[i].Area()
			require.True(t, q[i].Rect().In(r.Rect()), "%v outside %v", q[i], r)
			for j := i + 1; j < len(q); j++ {
				require.True(t, q[i].Rect().Intersect(q[j].Rect()).Empty(),
					"%v and %v overlap in %v", Quadrant(i), Quadrant(j), r)
			}
		}
		require.Equal(t, r.Area(), area, "quarters of %v", r)

		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				hits := 0
				for i := range q {
					if (image.Point{X: x, Y: y}).In(q[i].Rect()) {
						hits++
					}
				}
				require.Equal(t, 1, hits, "pixel (%d,%d) of %v", x, y, r)
			}
		}
	}
}

func TestQuadrantString(t *testing.T) {
	require.Equal(t, "NE", NE.String())
	require.Equal(t, "SE", SE.String())
	require.Equal(t, "Quadrant(7)", Quadrant(7).String())
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	for _, cfg := range []Config{
		{SampleStride: 0, DispersionThreshold: 25, MaxDepth: 6},
		{SampleStride: 25, DispersionThreshold: -1, MaxDepth: 6},
		{SampleStride: 25, DispersionThreshold: 25, MaxDepth: -1},
	} {
		err := cfg.Validate()
		require.True(t, errors.Is(err, ErrInvalidConfig), "%+v: %v", cfg, err)
	}
}
