// Package format defines the output image formats and the compression types
// a rendered figure can be written with.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnknownFormat is returned when a file extension names no supported image format.
	ErrUnknownFormat = errors.New("format: unknown image format")
)

type (
	ImageFormat     uint8
	CompressionType uint8
)

const (
	FormatPNG  ImageFormat = 0x1 // FormatPNG represents PNG raster output.
	FormatJPEG ImageFormat = 0x2 // FormatJPEG represents JPEG raster output.
	FormatTIFF ImageFormat = 0x3 // FormatTIFF represents TIFF raster output.
	FormatSVG  ImageFormat = 0x4 // FormatSVG represents SVG vector output.
	FormatPDF  ImageFormat = 0x5 // FormatPDF represents PDF vector output.
	FormatEPS  ImageFormat = 0x6 // FormatEPS represents encapsulated PostScript output.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionGzip CompressionType = 0x5 // CompressionGzip represents gzip compression.
)

func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatTIFF:
		return "TIFF"
	case FormatSVG:
		return "SVG"
	case FormatPDF:
		return "PDF"
	case FormatEPS:
		return "EPS"
	default:
		return "Unknown"
	}
}

// Extension returns the name gonum/plot uses to select the backend for f,
// or "" for an unknown format.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpg"
	case FormatTIFF:
		return "tif"
	case FormatSVG:
		return "svg"
	case FormatPDF:
		return "pdf"
	case FormatEPS:
		return "eps"
	default:
		return ""
	}
}

// IsVector reports whether f is a vector format.
func (f ImageFormat) IsVector() bool {
	return f == FormatSVG || f == FormatPDF || f == FormatEPS
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}

// Suffix returns the file suffix conventionally appended for c, including
// the dot, or "" for CompressionNone and unknown types.
func (c CompressionType) Suffix() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	case CompressionGzip:
		return ".gz"
	default:
		return ""
	}
}

var imageExts = map[string]ImageFormat{
	"png":  FormatPNG,
	"jpg":  FormatJPEG,
	"jpeg": FormatJPEG,
	"tif":  FormatTIFF,
	"tiff": FormatTIFF,
	"svg":  FormatSVG,
	"pdf":  FormatPDF,
	"eps":  FormatEPS,
}

var compressionExts = map[string]CompressionType{
	"zst":  CompressionZstd,
	"zstd": CompressionZstd,
	"s2":   CompressionS2,
	"lz4":  CompressionLZ4,
	"gz":   CompressionGzip,
}

// FromPath derives the image format and compression from a file name.
//
// A trailing compression suffix (".zst", ".s2", ".lz4", ".gz") is peeled off
// before the image extension is read, so "fig.svg.zst" is zstd compressed SVG.
// ".svgz" is gzip compressed SVG. Matching is case-insensitive.
func FromPath(path string) (ImageFormat, CompressionType, error) {
	name := strings.ToLower(filepath.Base(path))
	comp := CompressionNone

	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if c, ok := compressionExts[ext]; ok {
		comp = c
		name = strings.TrimSuffix(name, "."+ext)
		ext = strings.TrimPrefix(filepath.Ext(name), ".")
	}

	if ext == "svgz" && comp == CompressionNone {
		return FormatSVG, CompressionGzip, nil
	}

	f, ok := imageExts[ext]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	return f, comp, nil
}
