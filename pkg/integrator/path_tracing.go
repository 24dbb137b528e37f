package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// DefaultShadowEpsilon is the relative distance tolerance used when checking
// that a shadow ray reaches the sampled light point
const DefaultShadowEpsilon = 1e-4

// PathTracingIntegrator implements unidirectional path tracing with next-event
// estimation. Every non-emissive hit gathers one light sample and, if it
// survives Russian roulette, continues along one BRDF-sampled direction.
// Paths end only by roulette or by leaving the scene.
type PathTracingIntegrator struct {
	ShadowEpsilon float64 // Relative tolerance for the shadow-ray distance check
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{ShadowEpsilon: DefaultShadowEpsilon}
}

// RayColor implements Integrator
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3 {
	color, _ := pt.Trace(ray, scene, sampler)
	return color
}

// Trace estimates the radiance along ray and also reports the number of
// bounces the path survived. A path that stops at its first hit has depth 0.
func (pt *PathTracingIntegrator) Trace(ray core.Ray, scene *scene.Scene, sampler core.Sampler) (core.Vec3, int) {
	hit := scene.Intersect(ray)
	if !hit.Happened {
		return core.Vec3{}, 0
	}

	// A camera ray that lands on a light sees its emission directly
	if hit.HasEmission {
		return hit.Emission, 0
	}

	return pt.shade(ray, hit, scene, sampler, 0)
}

// shade computes the radiance leaving a non-emissive hit toward the ray origin
func (pt *PathTracingIntegrator) shade(ray core.Ray, hit geometry.Intersection, scene *scene.Scene, sampler core.Sampler, depth int) (core.Vec3, int) {
	wo := ray.Direction.Negate()

	color := pt.directLight(hit, wo, scene, sampler)

	// Russian roulette: continue with probability rr and divide survivors by rr
	rr := scene.RussianRoulette()
	if sampler.Get1D() > rr {
		return color, depth
	}

	indirect, maxDepth := pt.indirectLight(hit, wo, scene, sampler, depth)
	return color.Add(indirect.Multiply(1.0 / rr)), maxDepth
}

// directLight samples one point on the scene's lights and returns its
// unoccluded contribution, converted from area to solid-angle measure
func (pt *PathTracingIntegrator) directLight(hit geometry.Intersection, wo core.Vec3, scene *scene.Scene, sampler core.Sampler) core.Vec3 {
	sample, ok := scene.SampleLight(sampler)
	if !ok {
		return core.Vec3{}
	}

	toLight := sample.Point.Subtract(hit.Point)
	distance := toLight.Length()
	if distance <= 0 {
		return core.Vec3{}
	}
	wi := toLight.Multiply(1.0 / distance)

	cosSurface := wi.Dot(hit.Normal)
	cosLight := wi.Negate().Dot(sample.Normal)
	if cosSurface <= 0 || cosLight <= 0 {
		return core.Vec3{}
	}

	if !pt.visible(hit.Point, wi, distance, sample, scene) {
		return core.Vec3{}
	}

	pdf := lights.SolidAnglePDF(sample.PDF, distance, cosLight)
	if pdf <= 0 {
		return core.Vec3{}
	}

	fr := hit.Material.Evaluate(wi, wo, hit.Normal)
	return sample.Emission.MultiplyVec(fr).Multiply(cosSurface / pdf)
}

// visible reports whether the nearest hit along the shadow ray is the sampled
// point on the sampled light
func (pt *PathTracingIntegrator) visible(from, wi core.Vec3, distance float64, sample lights.LightSample, scene *scene.Scene) bool {
	blocker := scene.Intersect(core.NewRay(from, wi))
	if !blocker.Happened || blocker.Object != sample.Light {
		return false
	}
	return math.Abs(blocker.T-distance) <= pt.ShadowEpsilon*math.Max(1, distance)
}

// indirectLight follows one BRDF-sampled direction. Hits on emitters and
// misses contribute nothing, since direct lighting already accounts for
// light reaching the surface straight from an emitter.
func (pt *PathTracingIntegrator) indirectLight(hit geometry.Intersection, wo core.Vec3, scene *scene.Scene, sampler core.Sampler, depth int) (core.Vec3, int) {
	wi := hit.Material.Sample(wo, hit.Normal, sampler.Get2D())
	pdf := hit.Material.PDF(wi, wo, hit.Normal)
	cosine := wi.Dot(hit.Normal)
	if pdf <= 0 || cosine <= 0 {
		return core.Vec3{}, depth
	}

	bounce := core.NewRay(hit.Point, wi)
	next := scene.Intersect(bounce)
	if !next.Happened || next.HasEmission {
		return core.Vec3{}, depth
	}

	incoming, maxDepth := pt.shade(bounce, next, scene, sampler, depth+1)
	fr := hit.Material.Evaluate(wi, wo, hit.Normal)
	return incoming.MultiplyVec(fr).Multiply(cosine / pdf), maxDepth
}
