// Package output writes rendered images to disk.
package output

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnsupportedFormat is returned for file extensions without an encoder
var ErrUnsupportedFormat = errors.New("output: unsupported image format")

// Encoder writes a rendered image in one file format
type Encoder interface {
	Encode(w io.Writer, img *renderer.RenderedImage) error
}

// PNGEncoder writes PNG files
type PNGEncoder struct{}

// Encode implements Encoder
func (PNGEncoder) Encode(w io.Writer, img *renderer.RenderedImage) error {
	return png.Encode(w, img)
}

// EncoderForPath picks an encoder from the file extension: .png, or .ppm
// (ASCII P3 with max color 255)
func EncoderForPath(path string) (Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNGEncoder{}, nil
	case ".ppm":
		return NewPPMEncoder(255), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Save encodes the image to path in the format given by its extension
func Save(path string, img *renderer.RenderedImage) error {
	encoder, err := EncoderForPath(path)
	if err != nil {
		return err
	}
	return SaveWith(path, img, encoder)
}

// SaveWith encodes the image to path, creating parent directories as needed
func SaveWith(path string, img *renderer.RenderedImage, encoder Encoder) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := encoder.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return file.Close()
}
