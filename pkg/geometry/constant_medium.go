package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ConstantMedium is a volume of uniform density bounded by a closed hittable,
// such as fog or smoke. Rays scatter inside it at an exponentially
// distributed distance.
type ConstantMedium struct {
	Boundary        core.Hittable
	PhaseMaterialID int
	negInvDensity   float64
}

// NewConstantMedium creates a medium inside boundary. It panics on a non-positive density.
func NewConstantMedium(boundary core.Hittable, density float64, phaseMaterialID int) *ConstantMedium {
	if density <= 0 {
		panic(fmt.Sprintf("constant medium: density must be positive, got %g", density))
	}
	return &ConstantMedium{
		Boundary:        boundary,
		PhaseMaterialID: phaseMaterialID,
		negInvDensity:   -1 / density,
	}
}

// Hit finds where the ray enters and leaves the boundary and samples a
// scattering distance between them
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.Universe, sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, core.Interval{Min: entry.T + 1e-4, Max: math.MaxFloat64}, sampler)
	if !ok {
		return nil, false
	}

	tEnter := max(entry.T, rayT.Min, 0)
	tExit := min(exit.T, rayT.Max)
	if tEnter >= tExit {
		return nil, false
	}

	rayLength := ray.Direction.Length()
	distanceInside := (tExit - tEnter) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := tEnter + hitDistance/rayLength
	return &core.HitRecord{
		Point:      ray.At(t),
		Normal:     core.NewVec3(1, 0, 0), // arbitrary
		T:          t,
		FrontFace:  true, // arbitrary
		MaterialID: m.PhaseMaterialID,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
