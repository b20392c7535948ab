package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	sphereGridRows = 24
	sphereGridCols = 24
)

// sphereGridCamera is the low, wide angle view used by the sphere grid scenes
func sphereGridCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		Width:         1200,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0.6,
		FocusDistance: 10,
	}
}

// NewSpheresScene creates the random sphere grid with three large feature spheres
func NewSpheresScene(opts BuildOptions) (*Scene, error) {
	random := opts.Random()
	s := NewScene(sphereGridCamera(), SamplingConfig{SamplesPerPixel: 500, MaxDepth: 50}, SkyBackground())

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for _, center := range sphereGridCenters(random) {
		id := s.AddMaterial(randomSphereMaterial(random))
		s.Add(geometry.NewSphere(center, 0.2, id))
	}

	addFeatureSpheres(s)
	return s, nil
}

// NewMovingSpheresScene creates the sphere grid with each small sphere rising
// during the shutter interval, over a checkered ground
func NewMovingSpheresScene(opts BuildOptions) (*Scene, error) {
	random := opts.Random()
	s := NewScene(sphereGridCamera(), SamplingConfig{SamplesPerPixel: 500, MaxDepth: 50}, SkyBackground())

	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := s.AddMaterial(material.NewTexturedLambertian(checker))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for _, from := range sphereGridCenters(random) {
		to := from.Add(core.NewVec3(0, random.Float64()/2, 0))
		id := s.AddMaterial(randomSphereMaterial(random))
		s.Add(geometry.NewMovingSphere(from, to, 0.2, id))
	}

	addFeatureSpheres(s)
	return s, nil
}

// NewSingleSphereScene creates a small diffuse sphere resting on a ground sphere
func NewSingleSphereScene(opts BuildOptions) (*Scene, error) {
	camera := geometry.DefaultCameraConfig()
	camera.Width = 200
	camera.Center = core.NewVec3(0, 0.5, 1.5)
	camera.LookAt = core.NewVec3(0, 0, -1)
	camera.VFov = 60
	camera.FocusDistance = 2.5

	s := NewScene(camera, SamplingConfig{SamplesPerPixel: 20, MaxDepth: 10}, SkyBackground())

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	center := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
	)
	return s, nil
}

// sphereGridCenters jitters one center inside each cell of the grid
func sphereGridCenters(random *rand.Rand) []core.Vec3 {
	halfRows := sphereGridRows / 2
	halfCols := sphereGridCols / 2

	centers := make([]core.Vec3, 0, sphereGridRows*sphereGridCols)
	for i := -halfRows; i < halfRows; i++ {
		for j := -halfCols; j < halfCols; j++ {
			centers = append(centers, core.NewVec3(
				float64(i)+0.9*random.Float64(),
				0.2,
				float64(j)+0.9*random.Float64(),
			))
		}
	}
	return centers
}

// randomSphereMaterial picks diffuse 80%, metal 15% and glass 5% of the time
func randomSphereMaterial(random *rand.Rand) material.Material {
	choose := random.Float64()
	switch {
	case choose < 0.8:
		albedo := randomVec3(random, 0, 1).MultiplyVec(randomVec3(random, 0, 1))
		return material.NewLambertian(albedo)
	case choose < 0.95:
		albedo := randomVec3(random, 0.5, 1)
		return material.NewMetal(albedo, random.Float64())
	default:
		return material.NewDielectric(1.5)
	}
}

func addFeatureSpheres(s *Scene) {
	glass := s.AddMaterial(material.NewDielectric(1.5))
	diffuse := s.AddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	metal := s.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, diffuse),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, metal),
	)
}

// randomVec3 draws each channel uniformly from [lo, hi)
func randomVec3(random *rand.Rand, lo, hi float64) core.Vec3 {
	span := hi - lo
	return core.NewVec3(
		lo+span*random.Float64(),
		lo+span*random.Float64(),
		lo+span*random.Float64(),
	)
}
