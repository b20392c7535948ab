package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a static sphere shape
type Sphere struct {
	Center     core.Vec3
	Radius     float64
	MaterialID int
	bbox       core.AABB
}

// NewSphere creates a new sphere. It panics on a non-positive radius.
func NewSphere(center core.Vec3, radius float64, materialID int) *Sphere {
	if radius <= 0 {
		panic(fmt.Sprintf("sphere: radius must be positive, got %g", radius))
	}
	r := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:     center,
		Radius:     radius,
		MaterialID: materialID,
		bbox:       core.NewAABB(center.Subtract(r), center.Add(r)),
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	return hitSphere(ray, rayT, s.Center, s.Radius, s.MaterialID)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// hitSphere solves the ray/sphere quadratic and keeps the nearest root
// lying strictly inside rayT
func hitSphere(ray core.Ray, rayT core.Interval, center core.Vec3, radius float64, materialID int) (*core.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := center.Subtract(ray.Origin)

	// Quadratic equation coefficients with b = -2h
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - radius*radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Divide(radius)
	return core.NewHitRecord(ray, point, root, outwardNormal, materialID, sphereUV(outwardNormal)), true
}

// sphereUV maps a point on the unit sphere to (u, v) in [0,1]²:
// u is the angle around the Y axis from X=-1, v the angle from Y=-1
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1, min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
