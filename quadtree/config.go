package quadtree

import "fmt"

type Config struct {
	// Distance in pixels between sampled points on both axes.
	SampleStride int
	// A region splits when its dispersion is strictly above this value.
	DispersionThreshold float64
	// Number of subdivision levels allowed below the root.
	MaxDepth int
}

func DefaultConfig() Config {
	return Config{
		SampleStride:        25,
		DispersionThreshold: 25,
		MaxDepth:            6,
	}
}

func (c Config) Validate() error {
	switch {
	case c.SampleStride <= 0:
		return fmt.Errorf("%w: sample stride must be positive: %d", ErrInvalidConfig, c.SampleStride)
	case c.DispersionThreshold < 0:
		return fmt.Errorf("%w: dispersion threshold must not be negative: %g", ErrInvalidConfig, c.DispersionThreshold)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative: %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}
