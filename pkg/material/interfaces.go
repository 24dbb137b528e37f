package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material is the BRDF capability of a surface. Directions follow the
// convention that wi points from the shading point toward the light (or the
// next bounce) and wo points from the shading point back toward the viewer.
type Material interface {
	// Evaluate returns the BRDF value fr(wi, wo) at a point with the given normal
	Evaluate(wi, wo, normal core.Vec3) core.Vec3

	// Sample draws an incoming direction wi for the outgoing direction wo
	Sample(wo, normal core.Vec3, sample core.Vec2) core.Vec3

	// PDF returns the solid-angle density with which Sample produces wi
	PDF(wi, wo, normal core.Vec3) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emission() core.Vec3
}

// EmissionOf returns the emitted radiance of a material and whether it emits at all
func EmissionOf(m Material) (core.Vec3, bool) {
	emitter, ok := m.(Emitter)
	if !ok {
		return core.Vec3{}, false
	}
	emission := emitter.Emission()
	return emission, emission.MaxComponent() > 0
}
