package core

// Hittable is anything a ray can intersect: primitives, decorators,
// lists and the BVH itself
type Hittable interface {
	// Hit returns the closest intersection with a ray parameter inside rayT.
	// The sampler is only consumed by participating media.
	Hit(ray Ray, rayT Interval, sampler Sampler) (*HitRecord, bool)
	BoundingBox() AABB
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point      Vec3    // Point of intersection
	Normal     Vec3    // Surface normal, always facing against the incoming ray
	T          float64 // Parameter t along the ray
	FrontFace  bool    // Whether ray hit the front face
	MaterialID int     // Index into the scene material table
	UV         Vec2    // Surface coordinates for texturing
}

// NewHitRecord builds a record and orients the normal against the ray
func NewHitRecord(ray Ray, point Vec3, t float64, outwardNormal Vec3, materialID int, uv Vec2) *HitRecord {
	hit := &HitRecord{
		Point:      point,
		T:          t,
		MaterialID: materialID,
		UV:         uv,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// WithPoint returns a copy of the record moved to another point
func (h *HitRecord) WithPoint(point Vec3) *HitRecord {
	moved := *h
	moved.Point = point
	return &moved
}

// WithPointAndNormal returns a copy of the record with a new point and normal.
// The face orientation is kept as is.
func (h *HitRecord) WithPointAndNormal(point, normal Vec3) *HitRecord {
	moved := *h
	moved.Point = point
	moved.Normal = normal
	return &moved
}
