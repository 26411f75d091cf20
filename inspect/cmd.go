package inspect

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"

	"quadpic/compress"
	"quadpic/parallel"
	"quadpic/quadtree"
)

type CLICmd struct {
	compress.TreeParams

	Scan   string    `help:"Source folder to scan, or a single image file" default:"."`
	Leaves bool      `help:"List every leaf region with its color" default:"false"`
	Files  []string  `kong:"-"`
	Out    io.Writer `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, files, err := compress.ScanPath(c.Scan)
	if err != nil {
		return err
	}
	c.Scan, c.Files = scanDir, files

	return c.Config().Validate()
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	reports := make([]string, len(c.Files))
	var mu sync.Mutex
	for i, fileName := range c.Files {
		worker(func() error {
			name := filepath.Join(c.Scan, fileName)
			report, err := c.inspect(name)
			if err != nil {
				slog.Error("could not inspect image", "file", name, "error", err)
				return fmt.Errorf("%s: %w", fileName, err)
			}
			mu.Lock()
			reports[i] = report
			mu.Unlock()
			return nil
		})
	}

	err := wait()

	for _, report := range reports {
		if report == "" {
			continue
		}
		if _, werr := io.WriteString(out, report); werr != nil {
			return fmt.Errorf("could not write report: %w", werr)
		}
	}

	return err
}

func (c *CLICmd) inspect(path string) (string, error) {
	img, imgType, err := compress.Decode(path)
	if err != nil {
		return "", err
	}

	tree, err := quadtree.NewTree(img, c.Config())
	if err != nil {
		return "", fmt.Errorf("could not build quadtree: %w", err)
	}
	tree.Decompose()

	s := tree.Stats()
	report := fmt.Sprintf("%s\t%s\t%dx%d\tnodes=%d\tleaves=%d\tdepth=%d\taverage=%s\n",
		filepath.Base(path), imgType, img.Bounds().Dx(), img.Bounds().Dy(),
		s.Nodes, s.Leaves, s.Depth, tree.AverageColor(tree.Root))

	if c.Leaves {
		tree.Walk(func(n *quadtree.Node, depth int) bool {
			if !n.Divided() {
				report += fmt.Sprintf("\t%d\t%v\t%s\n", depth, n.Region, tree.AverageColor(n))
			}
			return true
		})
	}

	return report, nil
}
