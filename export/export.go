// Package export renders gonum plots into image files and writers, optionally
// compressing the rendered bytes.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/arloliu/confplot/compress"
	"github.com/arloliu/confplot/format"
	"github.com/arloliu/confplot/internal/options"
	"github.com/arloliu/confplot/internal/pool"
)

var (
	// ErrNilPlot is returned when no plot is given.
	ErrNilPlot = errors.New("export: nil plot")
	// ErrInvalidSize is returned for a non-positive figure width or height.
	ErrInvalidSize = errors.New("export: invalid figure size")
)

// Config controls how Save writes a figure.
type Config struct {
	// Format overrides the image format derived from the file name.
	Format format.ImageFormat
	// Compression overrides the compression derived from the file name.
	Compression format.CompressionType
	// Perm is the permission of a newly created file.
	Perm os.FileMode
}

// Option is a functional option for Save.
type Option = options.Option[*Config]

func defaultConfig() Config {
	return Config{Perm: 0o644}
}

// WithFormat forces the image format regardless of the file extension.
func WithFormat(f format.ImageFormat) Option {
	return options.New(func(cfg *Config) error {
		if f.Extension() == "" {
			return fmt.Errorf("%w: %s", format.ErrUnknownFormat, f)
		}
		cfg.Format = f

		return nil
	})
}

// WithCompression forces the compression regardless of the file extension.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		if _, err := compress.GetCodec(c); err != nil {
			return err
		}
		cfg.Compression = c

		return nil
	})
}

// WithFileMode sets the permission of the created file.
func WithFileMode(perm os.FileMode) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Perm = perm
	})
}

// WriteTo renders p at the given size in format f, compresses the result with
// codec when it is not nil and writes it to w. It returns the number of bytes
// written.
func WriteTo(w io.Writer, p *plot.Plot, width, height vg.Length, f format.ImageFormat, codec compress.Compressor) (int64, error) {
	if p == nil {
		return 0, ErrNilPlot
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %vx%v", ErrInvalidSize, width, height)
	}
	ext := f.Extension()
	if ext == "" {
		return 0, fmt.Errorf("%w: %s", format.ErrUnknownFormat, f)
	}

	wt, err := p.WriterTo(width, height, ext)
	if err != nil {
		return 0, fmt.Errorf("export: %s canvas: %w", f, err)
	}

	buf := pool.GetFigureBuffer()
	defer pool.PutFigureBuffer(buf)

	if _, err := wt.WriteTo(buf); err != nil {
		return 0, fmt.Errorf("export: render %s: %w", f, err)
	}

	data := buf.Bytes()
	if codec != nil {
		if data, err = codec.Compress(data); err != nil {
			return 0, fmt.Errorf("export: compress %s: %w", f, err)
		}
	}

	n, err := w.Write(data)

	return int64(n), err
}

// Save renders p into the file at path.
//
// The image format and compression follow the file name (see format.FromPath)
// unless overridden with WithFormat or WithCompression. The file is only
// created once rendering succeeded.
func Save(p *plot.Plot, width, height vg.Length, path string, opts ...Option) error {
	cfg, err := options.Build(defaultConfig(), opts...)
	if err != nil {
		return err
	}

	f, comp := cfg.Format, cfg.Compression
	if f == 0 || comp == 0 {
		pf, pc, err := format.FromPath(path)
		if err != nil && f == 0 {
			return err
		}
		if f == 0 {
			f = pf
		}
		if comp == 0 {
			comp = pc
			if err != nil {
				comp = format.CompressionNone
			}
		}
	}

	codec, err := compress.GetCodec(comp)
	if err != nil {
		return err
	}

	out := pool.GetFigureBuffer()
	defer pool.PutFigureBuffer(out)

	if _, err := WriteTo(out, p, width, height, f, codec); err != nil {
		return err
	}

	if err := os.WriteFile(path, out.Bytes(), cfg.Perm); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}
