package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], colors in [0, 1]
}

// NewImageTexture creates a new image texture. It panics when the image is
// empty or the pixel count does not match the dimensions.
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("image texture: empty image %dx%d", width, height))
	}
	if len(pixels) != width*height {
		panic(fmt.Sprintf("image texture: got %d pixels for a %dx%d image", len(pixels), width, height))
	}
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	// Clamp UV coordinates to [0, 1]
	u := max(0, min(1, uv.X))
	v := max(0, min(1, uv.Y))

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	// u or v of exactly 1 lands one past the last pixel
	x = min(x, t.Width-1)
	y = min(y, t.Height-1)

	return t.Pixels[y*t.Width+x]
}
