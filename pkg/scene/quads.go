package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewQuadsScene creates five colored quads boxing in the view
func NewQuadsScene(opts BuildOptions) (*Scene, error) {
	camera := geometry.CameraConfig{
		Width:         800,
		AspectRatio:   1.0,
		VFov:          80,
		Center:        core.NewVec3(0, 0, 9),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		FocusDistance: 10,
	}
	s := NewScene(camera, DefaultSamplingConfig(), SkyBackground())

	leftRed := s.AddMaterial(material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2)))
	backGreen := s.AddMaterial(material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2)))
	rightBlue := s.AddMaterial(material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0)))
	upperOrange := s.AddMaterial(material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0)))
	lowerTeal := s.AddMaterial(material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8)))

	s.Add(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)
	return s, nil
}

// NewSimpleLightScene creates Perlin spheres lit only by a quad light and a
// sphere light against a black background
func NewSimpleLightScene(opts BuildOptions) (*Scene, error) {
	camera := geometry.CameraConfig{
		Width:         1200,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		Center:        core.NewVec3(26, 3, 6),
		LookAt:        core.NewVec3(0, 2, 0),
		Up:            core.NewVec3(0, 1, 0),
		FocusDistance: 10,
	}
	s := NewScene(camera, DefaultSamplingConfig(), FlatBackground(core.Vec3{}))

	marble := s.AddMaterial(material.NewTexturedLambertian(material.NewNoiseTexture(4, opts.Random())))
	// Brighter than white so it lights its surroundings
	light := s.AddMaterial(material.NewDiffuseLight(core.NewVec3(4, 4, 4)))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)
	return s, nil
}
