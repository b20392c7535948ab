package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderedImage is the 8-bit RGB result of a render. Pixels are stored
// row-major from the top row down, three bytes per pixel.
type RenderedImage struct {
	Width  int
	Height int
	Pixels []uint8
}

// NewRenderedImage creates a black image
func NewRenderedImage(width, height int) *RenderedImage {
	return &RenderedImage{
		Width:  width,
		Height: height,
		Pixels: make([]uint8, 3*width*height),
	}
}

// SetRGB stores the color of pixel (x, y), y counted from the top
func (img *RenderedImage) SetRGB(x, y int, r, g, b uint8) {
	offset := 3 * (y*img.Width + x)
	img.Pixels[offset] = r
	img.Pixels[offset+1] = g
	img.Pixels[offset+2] = b
}

// RGB returns the color of pixel (x, y), y counted from the top
func (img *RenderedImage) RGB(x, y int) (r, g, b uint8) {
	offset := 3 * (y*img.Width + x)
	return img.Pixels[offset], img.Pixels[offset+1], img.Pixels[offset+2]
}

// ColorModel implements image.Image
func (img *RenderedImage) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *RenderedImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements image.Image
func (img *RenderedImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return color.RGBA{}
	}
	r, g, b := img.RGB(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// vec3ToRGB converts an averaged linear color to 8-bit channels: gamma 2
// (square root), clamp to [0,1], scale by 255 and truncate. NaN channels become 0.
func vec3ToRGB(colorVec core.Vec3) (r, g, b uint8) {
	return quantizeChannel(colorVec.X), quantizeChannel(colorVec.Y), quantizeChannel(colorVec.Z)
}

func quantizeChannel(linear float64) uint8 {
	if math.IsNaN(linear) || linear <= 0 {
		return 0
	}
	gamma := math.Sqrt(linear)
	if gamma > 1 {
		gamma = 1
	}
	return uint8(255 * gamma)
}
