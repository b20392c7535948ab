package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrEmptyScene is returned when a scene has no objects to render
	ErrEmptyScene = errors.New("scene: no objects to render")

	// ErrInvalidSampling is returned for unusable sampling settings
	ErrInvalidSampling = errors.New("scene: invalid sampling configuration")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	CameraConfig   geometry.CameraConfig
	SamplingConfig SamplingConfig
	Background     Background
	Materials      []material.Material // Indexed by HitRecord.MaterialID
	Objects        []core.Hittable     // Top-level objects in the scene
	World          core.Hittable       // Acceleration structure over Objects, built by Preprocess

	bvh *core.BVH
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns the default sampling configuration
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate checks the sampling settings
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidSampling, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidSampling, c.MaxDepth)
	}
	return nil
}

// Background is the radiance of rays that escape the scene: a vertical
// gradient from Bottom to Top, or a flat color when both are equal
type Background struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// FlatBackground returns a background of a single color
func FlatBackground(color core.Vec3) Background {
	return Background{Top: color, Bottom: color}
}

// SkyBackground returns the default white-to-blue sky gradient
func SkyBackground() Background {
	return Background{Top: core.NewVec3(0.5, 0.7, 1.0), Bottom: core.NewVec3(1.0, 1.0, 1.0)}
}

// Color returns the background radiance seen along a ray
func (b Background) Color(ray core.Ray) core.Vec3 {
	if b.Top == b.Bottom {
		return b.Top
	}
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// NewScene creates an empty scene with the given camera, sampling and background
func NewScene(camera geometry.CameraConfig, sampling SamplingConfig, background Background) *Scene {
	return &Scene{
		CameraConfig:   camera,
		SamplingConfig: sampling,
		Background:     background,
	}
}

// AddMaterial appends a material to the table and returns its id
func (s *Scene) AddMaterial(m material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// Add appends top-level objects
func (s *Scene) Add(objects ...core.Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// Preprocess builds the acceleration structure. The scene is read-only afterwards.
func (s *Scene) Preprocess() error {
	if len(s.Objects) == 0 {
		return ErrEmptyScene
	}
	s.bvh = core.NewBVH(s.Objects)
	s.World = s.bvh

	stats := s.bvh.Stats()
	logger.Debugf("BVH built over %d objects: %d nodes, %d leaves, depth %d",
		len(s.Objects), stats.TotalNodes, stats.LeafNodes, stats.MaxDepth)
	return nil
}

// BVHStats reports the shape of the acceleration structure, zero before Preprocess
func (s *Scene) BVHStats() core.BVHStats {
	if s.bvh == nil {
		return core.BVHStats{}
	}
	return s.bvh.Stats()
}

// Material returns the material with the given id. A dangling id means the
// scene was assembled incorrectly, so it panics.
func (s *Scene) Material(id int) material.Material {
	if id < 0 || id >= len(s.Materials) {
		panic(fmt.Sprintf("scene: material id %d out of range (%d materials)", id, len(s.Materials)))
	}
	return s.Materials[id]
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, object := range s.Objects {
		count += countPrimitives(object)
	}
	return count
}

// countPrimitives counts leaf primitives, looking through groups and decorators
func countPrimitives(object core.Hittable) int {
	switch obj := object.(type) {
	case *core.HittableList:
		count := 0
		for _, child := range obj.Objects() {
			count += countPrimitives(child)
		}
		return count
	case *core.BVH:
		return obj.Stats().LeafNodes
	case *geometry.Translate:
		return countPrimitives(obj.Object)
	case *geometry.RotateY:
		return countPrimitives(obj.Object)
	case *geometry.ConstantMedium:
		return countPrimitives(obj.Boundary)
	default:
		return 1
	}
}
