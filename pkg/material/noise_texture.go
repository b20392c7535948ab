package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Default turbulence settings for marble-like noise
const (
	DefaultTurbulenceDepth  = 7
	DefaultTurbulenceFactor = 10.0
)

// NoiseTexture is a grey marble pattern: sine stripes along Z distorted by
// Perlin turbulence
type NoiseTexture struct {
	noise            *Perlin
	Scale            float64
	TurbulenceDepth  int
	TurbulenceFactor float64
}

// NewNoiseTexture creates a marble texture with the default turbulence
func NewNoiseTexture(scale float64, random *rand.Rand) *NoiseTexture {
	return NewTurbulentNoiseTexture(scale, DefaultTurbulenceDepth, DefaultTurbulenceFactor, random)
}

// NewTurbulentNoiseTexture creates a marble texture with explicit turbulence
// settings. A factor of zero gives plain sine stripes.
func NewTurbulentNoiseTexture(scale float64, depth int, factor float64, random *rand.Rand) *NoiseTexture {
	return &NoiseTexture{
		noise:            NewPerlin(random),
		Scale:            scale,
		TurbulenceDepth:  depth,
		TurbulenceFactor: factor,
	}
}

// Evaluate returns a grey level in [0, 1]
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + n.TurbulenceFactor*n.noise.Turbulence(point, n.TurbulenceDepth)
	grey := 0.5 * (1 + math.Sin(phase))
	return core.NewVec3(grey, grey, grey)
}
