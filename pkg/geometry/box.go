package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NewCuboid returns the six quads of the axis-aligned box spanned by two
// opposite corners
func NewCuboid(a, b core.Vec3, materialID int) *core.HittableList {
	min := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	return core.NewHittableList(
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, materialID),          // front
		NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, materialID), // right
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, materialID), // back
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, materialID),          // left
		NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), materialID), // top
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, materialID),          // bottom
	)
}

// NewBox creates a box from its center and half-extents, turned by
// rotationY degrees about its own vertical axis
func NewBox(center, halfSize core.Vec3, rotationY float64, materialID int) core.Hittable {
	var box core.Hittable = NewCuboid(halfSize.Negate(), halfSize, materialID)
	if rotationY != 0 {
		box = NewRotateY(box, rotationY)
	}
	if center != (core.Vec3{}) {
		box = NewTranslate(box, center)
	}
	return box
}
