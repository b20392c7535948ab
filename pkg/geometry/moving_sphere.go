package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly from one point at
// time 0 to another at time 1
type MovingSphere struct {
	From       core.Vec3
	Motion     core.Vec3 // Displacement over one time unit
	Radius     float64
	MaterialID int
	bbox       core.AABB
}

// NewMovingSphere creates a sphere travelling from -> to. It panics on a non-positive radius.
func NewMovingSphere(from, to core.Vec3, radius float64, materialID int) *MovingSphere {
	if radius <= 0 {
		panic(fmt.Sprintf("moving sphere: radius must be positive, got %g", radius))
	}
	r := core.NewVec3(radius, radius, radius)
	box0 := core.NewAABB(from.Subtract(r), from.Add(r))
	box1 := core.NewAABB(to.Subtract(r), to.Add(r))
	return &MovingSphere{
		From:       from,
		Motion:     to.Subtract(from),
		Radius:     radius,
		MaterialID: materialID,
		bbox:       box0.Union(box1),
	}
}

// CenterAt returns the sphere center at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	return s.From.Add(s.Motion.Multiply(time))
}

// Hit intersects the ray with the sphere as positioned at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	return hitSphere(ray, rayT, s.CenterAt(ray.Time), s.Radius, s.MaterialID)
}

// BoundingBox covers the sphere over the whole [0, 1] time range
func (s *MovingSphere) BoundingBox() core.AABB {
	return s.bbox
}
