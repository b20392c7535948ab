package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Translate moves a wrapped hittable by a fixed offset
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears displaced by offset
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Offset(offset),
	}
}

// Hit moves the ray into object space, intersects, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	moved := core.Ray{Origin: ray.Origin.Subtract(t.Offset), Direction: ray.Direction, Time: ray.Time}

	hit, ok := t.Object.Hit(moved, rayT, sampler)
	if !ok {
		return nil, false
	}
	return hit.WithPoint(hit.Point.Add(t.Offset)), true
}

// BoundingBox returns the wrapped box shifted by the offset
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}
