package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// PPMEncoder writes ASCII (P3) or binary (P6) portable pixmaps
type PPMEncoder struct {
	MaxColor int  // Declared maximum channel value, 1..255
	Binary   bool // P6 when true, P3 otherwise
}

// NewPPMEncoder creates an ASCII encoder declaring the given maximum color.
// Channels are written unscaled, so values above maxColor are clamped.
func NewPPMEncoder(maxColor int) *PPMEncoder {
	return &PPMEncoder{MaxColor: maxColor}
}

// NewBinaryPPMEncoder creates a P6 encoder
func NewBinaryPPMEncoder() *PPMEncoder {
	return &PPMEncoder{MaxColor: 255, Binary: true}
}

// Encode implements Encoder
func (e *PPMEncoder) Encode(w io.Writer, img *renderer.RenderedImage) error {
	if e.MaxColor < 1 || e.MaxColor > 255 {
		return fmt.Errorf("ppm: max color must be in [1, 255], got %d", e.MaxColor)
	}

	bw := bufio.NewWriter(w)
	magic := "P3"
	if e.Binary {
		magic = "P6"
	}
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", magic, img.Width, img.Height, e.MaxColor); err != nil {
		return err
	}

	maxColor := uint8(e.MaxColor)
	for i := 0; i < len(img.Pixels); i += 3 {
		r, g, b := min(img.Pixels[i], maxColor), min(img.Pixels[i+1], maxColor), min(img.Pixels[i+2], maxColor)
		var err error
		if e.Binary {
			_, err = bw.Write([]byte{r, g, b})
		} else {
			_, err = fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
