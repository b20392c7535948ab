package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	finalBoxesPerSide   = 20
	finalStackedSpheres = 1000
)

// NewFinalScene creates the showcase scene combining every primitive, material and texture
func NewFinalScene(opts BuildOptions) (*Scene, error) {
	earth, err := loadEarthTexture(opts)
	if err != nil {
		return nil, err
	}
	random := opts.Random()

	camera := geometry.CameraConfig{
		Width:         800,
		AspectRatio:   1.0,
		VFov:          40,
		Center:        core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		FocusDistance: 10,
	}
	s := NewScene(camera, SamplingConfig{SamplesPerPixel: 5000, MaxDepth: 80}, FlatBackground(core.Vec3{}))

	// Ground of boxes with random heights
	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53)))
	const w = 100.0
	for i := 0; i < finalBoxesPerSide; i++ {
		for j := 0; j < finalBoxesPerSide; j++ {
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1 + 100*random.Float64()
			s.Add(geometry.NewCuboid(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}

	light := s.AddMaterial(material.NewDiffuseLight(core.NewVec3(7, 7, 7)))
	s.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	moving := s.AddMaterial(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1)))
	from := core.NewVec3(400, 400, 200)
	s.Add(geometry.NewMovingSphere(from, from.Add(core.NewVec3(30, 0, 0)), 50, moving))

	glass := s.AddMaterial(material.NewDielectric(1.5))
	s.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, glass))

	metal := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0))
	s.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, metal))

	globe := s.AddMaterial(material.NewTexturedLambertian(earth))
	s.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, globe))

	marble := s.AddMaterial(material.NewTexturedLambertian(material.NewNoiseTexture(0.2, random)))
	s.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, marble))

	// Cluster of small spheres, grouped under one BVH so the decorators transform a single object
	white := s.AddMaterial(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	stacked := make([]core.Hittable, finalStackedSpheres)
	for i := range stacked {
		stacked[i] = geometry.NewSphere(randomVec3(random, 0, 166), 10, white)
	}
	cluster := geometry.NewRotateY(core.NewBVH(stacked), 15)
	s.Add(geometry.NewTranslate(cluster, core.NewVec3(-100, 270, 395)))

	return s, nil
}
