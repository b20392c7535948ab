package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// fixedSampler replays a fixed list of values, cycling at the end
type fixedSampler struct {
	values []float64
	next   int
}

func (s *fixedSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.Get1D(), s.Get1D())
}

func (s *fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.Get1D(), s.Get1D(), s.Get1D())
}

func TestLambertian_ScatterAboveSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.6, 0.7))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0.7)
	sampler := newTestSampler(42)

	var meanCos float64
	const n = 5000
	for i := 0; i < n; i++ {
		result, scattered := lambertian.Scatter(ray, upHit(), sampler)
		if !scattered {
			t.Fatal("Lambertian should always scatter")
		}
		if result.Attenuation != core.NewVec3(0.5, 0.6, 0.7) {
			t.Fatalf("Unexpected attenuation %v", result.Attenuation)
		}
		if result.Scattered.Time != 0.7 {
			t.Fatalf("Expected time 0.7, got %f", result.Scattered.Time)
		}
		cos := result.Scattered.Direction.Dot(upHit().Normal)
		if cos < -1e-9 {
			t.Fatalf("Scattered direction %v points into the surface", result.Scattered.Direction)
		}
		meanCos += cos
	}

	// normal + unit sphere sample is cosine distributed: E[cos θ] = 2/3
	meanCos /= n
	if math.Abs(meanCos-2.0/3.0) > 0.02 {
		t.Errorf("Expected mean cosine near 2/3, got %f", meanCos)
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	// Sample (0.5, 0, 0.5) maps to the unit vector (0,-1,0), cancelling the normal
	sampler := &fixedSampler{values: []float64{0.5, 0, 0.5}}

	result, _ := lambertian.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0), upHit(), sampler)
	if result.Scattered.Direction != upHit().Normal {
		t.Errorf("Expected fallback to the normal, got %v", result.Scattered.Direction)
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	checker := NewCheckerColors(1, core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	lambertian := NewTexturedLambertian(checker)

	hit := upHit()
	hit.Point = core.NewVec3(0.5, 0, 0.5)
	result, _ := lambertian.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0), hit, newTestSampler(1))
	if result.Attenuation != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected even checker color, got %v", result.Attenuation)
	}
}

func TestDiffuseLight(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))

	if _, scattered := light.Scatter(core.Ray{}, upHit(), newTestSampler(1)); scattered {
		t.Error("Lights should not scatter")
	}
	if got := light.Emitted(core.Vec2{}, core.Vec3{}); got != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected emission (4,4,4), got %v", got)
	}
}

func TestNonEmittingMaterials(t *testing.T) {
	materials := map[string]Material{
		"lambertian": NewLambertian(core.NewVec3(1, 1, 1)),
		"metal":      NewMetal(core.NewVec3(1, 1, 1), 0),
		"dielectric": NewDielectric(1.5),
		"isotropic":  NewIsotropic(core.NewVec3(1, 1, 1)),
	}
	for name, m := range materials {
		if got := m.Emitted(core.NewVec2(0.5, 0.5), core.NewVec3(1, 2, 3)); got != (core.Vec3{}) {
			t.Errorf("%s: expected no emission, got %v", name, got)
		}
	}
}

func TestIsotropic(t *testing.T) {
	isotropic := NewIsotropic(core.NewVec3(0.2, 0.4, 0.6))
	sampler := newTestSampler(5)

	var sum core.Vec3
	const n = 5000
	for i := 0; i < n; i++ {
		result, scattered := isotropic.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0), 0), upHit(), sampler)
		if !scattered {
			t.Fatal("Isotropic should always scatter")
		}
		if result.Attenuation != core.NewVec3(0.2, 0.4, 0.6) {
			t.Fatalf("Unexpected attenuation %v", result.Attenuation)
		}
		sum = sum.Add(result.Scattered.Direction)
	}

	// Scattering ignores the incoming direction and the normal
	if mean := sum.Divide(n); mean.Length() > 0.05 {
		t.Errorf("Expected mean scatter direction near zero, got %v", mean)
	}
}
