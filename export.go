package ggplay

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for an image format ggplay cannot encode.
var ErrUnknownFormat = errors.New("ggplay: unknown image format")

// Format identifies an image file format.
type Format uint8

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatBMP
	FormatTIFF
)

var formatNames = [...]string{
	FormatPNG:  "png",
	FormatJPEG: "jpeg",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
}

// String returns the canonical lower-case name, which is also the file
// extension (without the dot).
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// Formats returns the names of every supported format.
func Formats() []string {
	return append([]string(nil), formatNames[:]...)
}

// ParseFormat parses a format name or file extension such as "png", ".jpg"
// or "TIFF".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, f)
}

// SaveImage writes img to path in the format named by its extension.
func SaveImage(path string, img image.Image) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	if err := Encode(file, img, f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
