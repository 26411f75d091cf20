package compress

import (
	"fmt"
	"os"
	"path/filepath"

	"quadpic/quadtree"
)

// TreeParams are the decomposition flags shared by the commands.
type TreeParams struct {
	Stride    int     `help:"Distance in pixels between sampled points" default:"25" env:"QUADPIC_STRIDE" group:"decomposition"`
	Threshold float64 `help:"Split a region when the mean of its channel standard deviations is above this value" default:"25" env:"QUADPIC_THRESHOLD" group:"decomposition"`
	Depth     int     `help:"Maximum number of subdivision levels" default:"6" env:"QUADPIC_DEPTH" group:"decomposition"`
}

func (p TreeParams) Config() quadtree.Config {
	return quadtree.Config{
		SampleStride:        p.Stride,
		DispersionThreshold: p.Threshold,
		MaxDepth:            p.Depth,
	}
}

// ScanPath resolves a folder or a single image file into an absolute folder
// and the names of the files to process in it.
func ScanPath(scan string) (string, []string, error) {
	path, err := filepath.Abs(scan)
	if err != nil {
		return "", nil, fmt.Errorf("invalid scan path %q: %w", scan, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("invalid scan path %q: %w", scan, err)
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return "", nil, fmt.Errorf("invalid scan path %q: not a regular file", scan)
		}
		return filepath.Dir(path), []string{info.Name()}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", nil, fmt.Errorf("unable to read folder %q: %w", path, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return path, names, nil
}
