package compress

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/alecthomas/kong"

	"quadpic/palette"
	"quadpic/parallel"
	"quadpic/quadtree"
)

type CLICmd struct {
	TreeParams

	Scan          string        `help:"Source folder to scan, or a single image file" default:"."`
	Dest          string        `help:"Destination folder for compressed pictures. Relative to scan dir if not absolute." default:"compressed"`
	Prefix        string        `help:"Prefix added to the name of every compressed picture" default:"compressed_"`
	Strategy      string        `help:"Paint every node parent first, or only the leaves" enum:"leaves,preorder" default:"leaves" group:"render"`
	Outline       string        `help:"Draw leaf borders in this color (#RGB or #RRGGBB)" group:"render"`
	Palette       string        `help:"Snap region colors to a palette: name (bw, gray16, vga16, spectra6, websafe, plan9), hex list or PAL file in RIFF format" group:"render"`
	Format        string        `help:"Output format of compressed image. If prefixed with 'unsup:' will convert only unsupported formats" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`
	OutlineColor  color.Color   `kong:"-"`
	PaletteColors color.Palette `kong:"-"`
	Files         []string      `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, files, err := ScanPath(c.Scan)
	if err != nil {
		return err
	}
	c.Scan, c.Files = scanDir, files

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if err := c.Config().Validate(); err != nil {
		return err
	}

	if c.Outline != "" {
		if c.OutlineColor, err = palette.ParseColor(c.Outline); err != nil {
			return err
		}
	}

	if c.Palette != "" {
		if c.PaletteColors, err = palette.LoadPalette(c.Palette); err != nil {
			return err
		}
	}

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, fileName := range c.Files {
		worker(func() error {
			logger := slog.Default().With("file", filepath.Join(c.Scan, fileName))

			if err := c.process(logger, fileName); err != nil {
				errCount.Add(1)
				logger.Error("could not compress image", "error", err)
				return fmt.Errorf("%s: %w", fileName, err)
			}
			processedCount.Add(1)
			return nil
		})
	}

	err := wait()

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if err != nil {
		return fmt.Errorf("error processing %d files: %w", errors, err)
	}
	return nil
}

func (c *CLICmd) process(logger *slog.Logger, fileName string) error {
	img, imgType, err := Decode(filepath.Join(c.Scan, fileName))
	if err != nil {
		return err
	}

	tree, err := quadtree.NewTree(img, c.Config())
	if err != nil {
		return fmt.Errorf("could not build quadtree: %w", err)
	}
	tree.Decompose()

	stats := tree.Stats()
	logger.Info("decomposed", "width", img.Bounds().Dx(), "height", img.Bounds().Dy(),
		"nodes", stats.Nodes, "leaves", stats.Leaves, "depth", stats.Depth,
		"average", tree.AverageColor(tree.Root).Hex())

	out := c.render(tree)

	outName := c.Prefix + fileName
	if err = save(out, imgType, c.Format, c.Dest, outName); err != nil {
		return err
	}
	logger.Debug("saved", "dir", c.Dest, "name", outName)
	return nil
}

func (c *CLICmd) render(tree *quadtree.Tree) *image.RGBA {
	out := image.NewRGBA(tree.Root.Region.Rect())

	var sink quadtree.Sink = quadtree.Canvas{Dst: out}
	if len(c.PaletteColors) > 0 {
		sink = palette.Sink{Next: sink, Palette: c.PaletteColors}
	}

	switch c.Strategy {
	case "preorder":
		tree.Reconstruct(sink)
	default:
		tree.ReconstructLeaves(sink)
	}

	if c.OutlineColor != nil {
		drawOutlines(out, tree.Leaves(), c.OutlineColor)
	}
	return out
}
