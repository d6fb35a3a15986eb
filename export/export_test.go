package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/arloliu/confplot/compress"
	"github.com/arloliu/confplot/format"
)

func testPlot(t *testing.T) *plot.Plot {
	t.Helper()

	p := plot.New()
	p.Title.Text = "export"
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}})
	require.NoError(t, err)
	p.Add(line)

	return p
}

func decode(t *testing.T, ct format.CompressionType, data []byte) []byte {
	t.Helper()

	codec, err := compress.GetCodec(ct)
	require.NoError(t, err)
	out, err := codec.Decompress(data)
	require.NoError(t, err)

	return out
}

func TestSave(t *testing.T) {
	tests := []struct {
		name   string
		comp   format.CompressionType
		prefix []byte
	}{
		{"fig.png", format.CompressionNone, []byte("\x89PNG")},
		{"fig.jpg", format.CompressionNone, []byte{0xff, 0xd8}},
		{"fig.svg", format.CompressionNone, []byte("<?xml")},
		{"fig.pdf", format.CompressionNone, []byte("%PDF")},
		{"fig.eps", format.CompressionNone, []byte("%!PS")},
		{"fig.svgz", format.CompressionGzip, []byte("<?xml")},
		{"fig.svg.zst", format.CompressionZstd, []byte("<?xml")},
		{"fig.png.lz4", format.CompressionLZ4, []byte("\x89PNG")},
		{"fig.svg.s2", format.CompressionS2, []byte("<?xml")},
	}

	p := testPlot(t)
	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			require.NoError(t, Save(p, 3*vg.Inch, 2*vg.Inch, path))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			data = decode(t, tt.comp, data)
			require.True(t, bytes.HasPrefix(data, tt.prefix), "unexpected header %q", data[:min(len(data), 8)])
		})
	}
}

func TestSave_Overrides(t *testing.T) {
	p := testPlot(t)
	path := filepath.Join(t.TempDir(), "figure.out")

	err := Save(p, 3*vg.Inch, 2*vg.Inch, path)
	require.ErrorIs(t, err, format.ErrUnknownFormat)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "no file on error")

	require.NoError(t, Save(p, 3*vg.Inch, 2*vg.Inch, path,
		WithFormat(format.FormatSVG),
		WithCompression(format.CompressionGzip),
		WithFileMode(0o600),
	))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(decode(t, format.CompressionGzip, data)), "<svg")
}

func TestSave_Errors(t *testing.T) {
	p := testPlot(t)
	dir := t.TempDir()

	require.ErrorIs(t, Save(nil, vg.Inch, vg.Inch, filepath.Join(dir, "a.png")), ErrNilPlot)
	require.ErrorIs(t, Save(p, 0, vg.Inch, filepath.Join(dir, "a.png")), ErrInvalidSize)
	require.ErrorIs(t, Save(p, vg.Inch, vg.Inch, filepath.Join(dir, "a.gif")), format.ErrUnknownFormat)
	require.ErrorIs(t, Save(p, vg.Inch, vg.Inch, filepath.Join(dir, "a.png"), WithFormat(format.ImageFormat(0x7f))), format.ErrUnknownFormat)
	require.ErrorIs(t, Save(p, vg.Inch, vg.Inch, filepath.Join(dir, "a.png"), WithCompression(format.CompressionType(0x7f))), compress.ErrUnsupported)
	require.Error(t, Save(p, vg.Inch, vg.Inch, filepath.Join(dir, "missing", "a.png")))
}

func TestWriteTo(t *testing.T) {
	p := testPlot(t)

	var plain bytes.Buffer
	n, err := WriteTo(&plain, p, 3*vg.Inch, 2*vg.Inch, format.FormatSVG, nil)
	require.NoError(t, err)
	require.Equal(t, int64(plain.Len()), n)
	require.Contains(t, plain.String(), "<svg")

	var packed bytes.Buffer
	_, err = WriteTo(&packed, p, 3*vg.Inch, 2*vg.Inch, format.FormatSVG, compress.NewZstdCompressor())
	require.NoError(t, err)
	require.Less(t, packed.Len(), plain.Len())
	require.Equal(t, plain.Bytes(), decode(t, format.CompressionZstd, packed.Bytes()))

	_, err = WriteTo(&plain, p, vg.Inch, -1, format.FormatPNG, nil)
	require.ErrorIs(t, err, ErrInvalidSize)
	_, err = WriteTo(&plain, p, vg.Inch, vg.Inch, format.ImageFormat(0), nil)
	require.ErrorIs(t, err, format.ErrUnknownFormat)
}
