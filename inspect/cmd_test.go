package inspect

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"

	"quadpic/compress"
	"quadpic/parallel"
)

func writeHalves(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	draw.Draw(img, image.Rect(0, 0, 32, 64), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(32, 0, 64, 64), image.NewUniform(color.White), image.Point{}, draw.Src)

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestInspectReportsTree(t *testing.T) {
	dir := t.TempDir()
	writeHalves(t, filepath.Join(dir, "halves.png"))

	var out bytes.Buffer
	cmd := &CLICmd{
		TreeParams: compress.TreeParams{Stride: 8, Threshold: 10, Depth: 3},
		Scan:       dir,
		Leaves:     true,
		Out:        &out,
	}
	require.NoError(t, cmd.Validate(nil))

	pool := parallel.Start(1)
	require.NoError(t, cmd.Run(pool.Do, pool.Wait))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "halves.png\tpng\t64x64\tnodes=5\tleaves=4\tdepth=1\taverage=#808080", lines[0])
	require.Equal(t, "\t1\t32x32+32+0\t#ffffff", lines[1])
	require.Equal(t, "\t1\t32x32+0+0\t#000000", lines[2])
}

func TestInspectFailsOnUndecodableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o644))

	cmd := &CLICmd{
		TreeParams: compress.TreeParams{Stride: 8, Threshold: 10, Depth: 3},
		Scan:       path,
		Out:        &bytes.Buffer{},
	}
	require.NoError(t, cmd.Validate(nil))

	pool := parallel.Start(2)
	err := cmd.Run(pool.Do, pool.Wait)
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.png")
}
