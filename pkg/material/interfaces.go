package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material decides how light leaves a surface
type Material interface {
	// Scatter returns the scattered ray and its attenuation, or false when
	// the incoming ray is absorbed
	Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the light given off at a surface point
	Emitted(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// nonEmitting is embedded by materials that give off no light
type nonEmitting struct{}

// Emitted returns black
func (nonEmitting) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
