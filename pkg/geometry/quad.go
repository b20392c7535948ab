package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner     core.Vec3 // One corner of the quad
	U          core.Vec3 // First edge vector
	V          core.Vec3 // Second edge vector
	Normal     core.Vec3 // Unit normal (direction of U × V)
	D          float64   // Plane equation constant: normal · p = D
	W          core.Vec3 // n / (n · n) with n = U × V, for planar coordinates
	MaterialID int
	bbox       core.AABB
}

// quadBoxPadding is the minimum bounding box thickness of a quad
const quadBoxPadding = 1e-4

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, materialID int) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// The box spans both diagonals so it is valid for any edge orientation
	diagonal1 := core.NewAABB(corner, corner.Add(u).Add(v))
	diagonal2 := core.NewAABB(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner:     corner,
		U:          u,
		V:          v,
		Normal:     normal,
		D:          normal.Dot(corner),
		W:          n.Divide(n.Dot(n)),
		MaterialID: materialID,
		bbox:       diagonal1.Union(diagonal2).Pad(quadBoxPadding),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	// Planar coordinates of the hit point relative to the corner
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	unit := core.Interval{Min: 0, Max: 1}
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return nil, false
	}

	return core.NewHitRecord(ray, hitPoint, t, q.Normal, q.MaterialID, core.NewVec2(alpha, beta)), true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
