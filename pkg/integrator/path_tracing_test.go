package integrator

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// passThroughMaterial emits a fixed color and lets rays continue unchanged, attenuated
type passThroughMaterial struct {
	emission    core.Vec3
	attenuation core.Vec3
	scatters    bool
}

func (m *passThroughMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	if !m.scatters {
		return material.ScatterResult{}, false
	}
	return material.ScatterResult{
		Scattered:   core.NewRay(hit.Point, rayIn.Direction, rayIn.Time),
		Attenuation: m.attenuation,
	}, true
}

func (m *passThroughMaterial) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return m.emission
}

func newTestSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// createTestScene creates a preprocessed scene with a single object
func createTestScene(t *testing.T, background scene.Background, m material.Material, object func(id int) core.Hittable) *scene.Scene {
	t.Helper()
	s := scene.NewScene(geometry.DefaultCameraConfig(), scene.DefaultSamplingConfig(), background)
	id := s.AddMaterial(m)
	s.Add(object(id))
	if err := s.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	return s
}

// facingQuad is a unit quad in the plane z = -1 centered on the -Z axis
func facingQuad(id int) core.Hittable {
	return geometry.NewQuad(core.NewVec3(-0.5, -0.5, -1), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), id)
}

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	sc := createTestScene(t, scene.SkyBackground(), material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)), func(id int) core.Hittable {
		return geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, id)
	})
	sampler := newTestSampler(42)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0), // hits the sphere
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0),  // sky
	}

	// Depth 0 terminates every path, even those that would see the background
	integrator := NewPathTracingIntegrator(scene.SamplingConfig{SamplesPerPixel: 1, MaxDepth: 0})
	for _, ray := range rays {
		if color := integrator.RayColor(ray, sc, sampler); color != (core.Vec3{}) {
			t.Errorf("Expected black color for depth 0, got %v", color)
		}
	}

	integrator = NewPathTracingIntegrator(scene.SamplingConfig{SamplesPerPixel: 1, MaxDepth: 3})
	if color := integrator.RayColor(rays[0], sc, sampler); color == (core.Vec3{}) {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestPathTracingMissReturnsBackground(t *testing.T) {
	background := scene.SkyBackground()
	sc := createTestScene(t, background, material.NewLambertian(core.NewVec3(1, 1, 1)), facingQuad)
	integrator := NewPathTracingIntegrator(scene.DefaultSamplingConfig())

	tests := []struct {
		name      string
		direction core.Vec3
	}{
		{"up", core.NewVec3(0, 1, 0)},
		{"down", core.NewVec3(0, -1, 0)},
		{"behind", core.NewVec3(0.3, 0.2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.Vec3{}, tt.direction, 0)
			if got, want := integrator.RayColor(ray, sc, newTestSampler(1)), background.Color(ray); got != want {
				t.Errorf("Expected background %v, got %v", want, got)
			}
		})
	}
}

func TestPathTracingEmissionAndAttenuation(t *testing.T) {
	background := scene.FlatBackground(core.NewVec3(0.2, 0.4, 0.6))
	m := &passThroughMaterial{
		emission:    core.NewVec3(1, 2, 3),
		attenuation: core.NewVec3(0.5, 0.5, 0.25),
		scatters:    true,
	}
	sc := createTestScene(t, background, m, facingQuad)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1), 0)

	tests := []struct {
		name     string
		maxDepth int
		expected core.Vec3
	}{
		// Scattered ray is cut off, only the emission survives
		{"depth 1", 1, core.NewVec3(1, 2, 3)},
		// emitted + attenuation * background
		{"depth 2", 2, core.NewVec3(1.1, 2.2, 3.15)},
		{"depth 50", 50, core.NewVec3(1.1, 2.2, 3.15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := NewPathTracingIntegrator(scene.SamplingConfig{SamplesPerPixel: 1, MaxDepth: tt.maxDepth})
			got := integrator.RayColor(ray, sc, newTestSampler(3))
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracingAbsorption(t *testing.T) {
	sc := createTestScene(t, scene.SkyBackground(), &passThroughMaterial{}, facingQuad)
	integrator := NewPathTracingIntegrator(scene.DefaultSamplingConfig())

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1), 0)
	if got := integrator.RayColor(ray, sc, newTestSampler(1)); got != (core.Vec3{}) {
		t.Errorf("Expected absorbed ray to be black, got %v", got)
	}
}

func TestPathTracingLightSource(t *testing.T) {
	sc := createTestScene(t, scene.FlatBackground(core.Vec3{}), material.NewDiffuseLight(core.NewVec3(4, 4, 4)), facingQuad)
	integrator := NewPathTracingIntegrator(scene.DefaultSamplingConfig())

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1), 0)
	if got := integrator.RayColor(ray, sc, newTestSampler(1)); got != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected light emission (4,4,4), got %v", got)
	}
}

func TestPathTracingLambertianUnderWhiteSky(t *testing.T) {
	// A white Lambertian plane under a uniform white sky reflects the sky
	// exactly, whatever the sampled directions
	white := core.NewVec3(1, 1, 1)
	sc := createTestScene(t, scene.FlatBackground(white), material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), func(id int) core.Hittable {
		return geometry.NewQuad(core.NewVec3(-100, -1, -100), core.NewVec3(200, 0, 0), core.NewVec3(0, 0, 200), id)
	})
	integrator := NewPathTracingIntegrator(scene.DefaultSamplingConfig())
	sampler := newTestSampler(11)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, -1, -1), 0)
	for i := 0; i < 100; i++ {
		if got := integrator.RayColor(ray, sc, sampler); got.Subtract(core.NewVec3(0.5, 0.5, 0.5)).Length() > 1e-12 {
			t.Fatalf("Expected half the sky radiance, got %v", got)
		}
	}
}

func TestPathTracingMissingMaterialPanics(t *testing.T) {
	s := scene.NewScene(geometry.DefaultCameraConfig(), scene.DefaultSamplingConfig(), scene.SkyBackground())
	s.Add(facingQuad(3))
	if err := s.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	integrator := NewPathTracingIntegrator(scene.DefaultSamplingConfig())

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for dangling material id")
		}
	}()
	integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1), 0), s, newTestSampler(1))
}

func TestPathTracingImplementsIntegrator(t *testing.T) {
	var _ Integrator = NewPathTracingIntegrator(scene.DefaultSamplingConfig())
}
