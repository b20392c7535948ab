package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RotateY rotates a wrapped hittable about the Y axis
type RotateY struct {
	Object   core.Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object rotated by angle degrees about the Y axis
func NewRotateY(object core.Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Bound the eight rotated corners of the wrapped box
	corners := object.BoundingBox().Corners()
	for i, corner := range corners {
		corners[i] = r.toWorld(corner)
	}
	r.bbox = core.NewAABBFromPoints(corners[:]...)
	return r
}

// toObject rotates a world-space vector by -angle
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object-space vector by +angle
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space and the resulting hit back to world space
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	rotated := core.Ray{
		Origin:    r.toObject(ray.Origin),
		Direction: r.toObject(ray.Direction),
		Time:      ray.Time,
	}

	hit, ok := r.Object.Hit(rotated, rayT, sampler)
	if !ok {
		return nil, false
	}
	return hit.WithPointAndNormal(r.toWorld(hit.Point), r.toWorld(hit.Normal)), true
}

// BoundingBox returns the box around the rotated object
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
