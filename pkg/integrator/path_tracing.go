package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// MinHitDistance is the lower bound of every intersection query. Scattered rays
// start on a surface, so hits closer than this are floating point noise.
const MinHitDistance = 0.001

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		maxDepth: config.MaxDepth,
	}
}

// RayColor computes the color for a single ray. The scene must have been preprocessed.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, scene, sampler, 0)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth >= pt.maxDepth {
		return core.Vec3{}
	}

	hit, isHit := scene.World.Hit(ray, core.NewInterval(MinHitDistance, math.Inf(1)), sampler)
	if !isHit {
		return scene.Background.Color(ray)
	}

	mat := scene.Material(hit.MaterialID)
	colorEmitted := mat.Emitted(hit.UV, hit.Point)

	scatter, didScatter := mat.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Absorbed, or a light source
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(
		pt.rayColor(scatter.Scattered, scene, sampler, depth+1))
	return colorEmitted.Add(colorScattered)
}
