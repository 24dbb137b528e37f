package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Emissive represents a light-emitting material. Lights do not reflect, so
// its BRDF is zero everywhere.
type Emissive struct {
	Radiance core.Vec3 // Emitted radiance
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Radiance: emission}
}

// Emission returns the emitted radiance for this material
func (e *Emissive) Emission() core.Vec3 {
	return e.Radiance
}

// Evaluate implements Material
func (e *Emissive) Evaluate(wi, wo, normal core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Sample implements Material. The direction is irrelevant because the
// density is zero; the normal is returned so callers always get a valid vector.
func (e *Emissive) Sample(wo, normal core.Vec3, sample core.Vec2) core.Vec3 {
	return normal
}

// PDF implements Material
func (e *Emissive) PDF(wi, wo, normal core.Vec3) float64 {
	return 0.0
}
