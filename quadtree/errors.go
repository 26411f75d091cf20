package quadtree

import "errors"

var (
	// ErrInvalidRegion is returned for a region with a non-positive size or
	// one that extends past the pixel source.
	ErrInvalidRegion = errors.New("invalid region")
	ErrInvalidConfig = errors.New("invalid configuration")
)
