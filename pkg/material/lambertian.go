package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Diffuse reflectance per channel, each in [0, 1]
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Evaluate implements Material. The BRDF is albedo/π on the side of the
// surface the normal faces and zero below it.
func (l *Lambertian) Evaluate(wi, wo, normal core.Vec3) core.Vec3 {
	if wi.Dot(normal) <= 0 {
		return core.Vec3{}
	}
	return l.Albedo.Multiply(1.0 / math.Pi)
}

// Sample implements Material using cosine-weighted hemisphere sampling
func (l *Lambertian) Sample(wo, normal core.Vec3, sample core.Vec2) core.Vec3 {
	return core.SampleCosineHemisphere(normal, sample).Normalize()
}

// PDF implements Material: cos(θ) / π, zero below the surface
func (l *Lambertian) PDF(wi, wo, normal core.Vec3) float64 {
	cosTheta := wi.Dot(normal)
	if cosTheta <= 0 {
		return 0.0
	}
	return cosTheta / math.Pi
}
