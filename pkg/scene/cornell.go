package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// cornellBoxSize is the edge length of the standard Cornell box
const cornellBoxSize = 555.0

// NewCornellScene creates the classic Cornell box with two rotated boxes
func NewCornellScene(opts BuildOptions) (*Scene, error) {
	s := newCornellShell(SamplingConfig{SamplesPerPixel: 1500, MaxDepth: 80})
	white := s.AddMaterial(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))

	tall, short := cornellBoxes(white)
	s.Add(tall, short)
	return s, nil
}

// NewCornellFogScene replaces the Cornell boxes with volumes of dark smoke and white fog
func NewCornellFogScene(opts BuildOptions) (*Scene, error) {
	s := newCornellShell(SamplingConfig{SamplesPerPixel: 2500, MaxDepth: 80})
	white := s.AddMaterial(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	smoke := s.AddMaterial(material.NewIsotropic(core.NewVec3(0, 0, 0)))
	fog := s.AddMaterial(material.NewIsotropic(core.NewVec3(1, 1, 1)))

	tall, short := cornellBoxes(white)
	s.Add(
		geometry.NewConstantMedium(tall, 0.005, smoke),
		geometry.NewConstantMedium(short, 0.005, fog),
	)
	return s, nil
}

// newCornellShell builds the camera, colored walls and ceiling light shared by
// the Cornell variants
func newCornellShell(sampling SamplingConfig) *Scene {
	camera := geometry.CameraConfig{
		Width:         800,
		AspectRatio:   1.0,
		VFov:          40,
		Center:        core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		FocusDistance: 10,
	}
	s := NewScene(camera, sampling, FlatBackground(core.Vec3{}))

	red := s.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05)))
	white := s.AddMaterial(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	green := s.AddMaterial(material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15)))
	light := s.AddMaterial(material.NewDiffuseLight(core.NewVec3(15, 15, 15)))

	size := cornellBoxSize
	s.Add(
		// Right wall (green) at x=555
		geometry.NewQuad(core.NewVec3(size, 0, 0), core.NewVec3(0, size, 0), core.NewVec3(0, 0, size), green),
		// Left wall (red) at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, size, 0), core.NewVec3(0, 0, size), red),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(size, 0, 0), core.NewVec3(0, 0, size), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(size, size, size), core.NewVec3(-size, 0, 0), core.NewVec3(0, 0, -size), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, size), core.NewVec3(size, 0, 0), core.NewVec3(0, size, 0), white),
		// Ceiling light, just below the ceiling
		geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light),
	)
	return s
}

// cornellBoxes returns the tall and short boxes, rotated and placed in the room
func cornellBoxes(materialID int) (core.Hittable, core.Hittable) {
	tall := geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), materialID)
	short := geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), materialID)

	return geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295)),
		geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))
}
