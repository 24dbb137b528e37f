package lights

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

func TestSolidAnglePDF(t *testing.T) {
	tests := []struct {
		name     string
		areaPDF  float64
		distance float64
		cosLight float64
		expected float64
	}{
		{"head-on unit distance", 0.5, 1, 1, 0.5},
		{"distance squared", 0.25, 3, 1, 0.25 * 9},
		{"oblique light", 0.25, 2, 0.5, 0.25 * 4 / 0.5},
		{"edge-on light", 0.25, 2, 0, 0},
		{"back-facing light", 0.25, 2, -0.7, 0},
		{"zero area pdf", 0, 2, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SolidAnglePDF(tt.areaPDF, tt.distance, tt.cosLight); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("SolidAnglePDF(%f, %f, %f) = %f, expected %f", tt.areaPDF, tt.distance, tt.cosLight, got, tt.expected)
			}
		})
	}
}

// A planar light of area A at distance d, tilted so its normal makes angle θ
// with the direction back to the shading point, must give (1/A)·d²/cosθ.
func TestSolidAnglePDF_SyntheticPlanarLight(t *testing.T) {
	const side = 0.5
	const d = 4.0
	theta := math.Pi / 5

	// Light centered at (0,0,d) facing back toward the origin, rotated by θ about Y
	sin, cos := math.Sincos(theta)
	u := core.NewVec3(cos*side, 0, sin*side)
	v := core.NewVec3(0, side, 0)
	center := core.NewVec3(0, 0, d)
	corner := center.Subtract(u.Multiply(0.5)).Subtract(v.Multiply(0.5))
	light := geometry.NewQuad(corner, v, u, bright)

	sampler := NewAreaLightSampler([]geometry.Object{light})
	area := side * side
	if math.Abs(sampler.PDF()-1/area) > 1e-9 {
		t.Fatalf("Expected area pdf %f, got %f", 1/area, sampler.PDF())
	}

	shading := core.NewVec3(0, 0, 0)
	toShading := shading.Subtract(center).Normalize()
	cosLight := light.Normal.Dot(toShading)
	if math.Abs(cosLight-cos) > 1e-9 {
		t.Fatalf("Expected light cosine %f, got %f", cos, cosLight)
	}

	got := SolidAnglePDF(sampler.PDF(), d, cosLight)
	expected := (1 / area) * d * d / cos
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected solid-angle pdf %f, got %f", expected, got)
	}

	// The solid angle subtended by a small light is about A·cosθ/d², so the
	// uniform density over that solid angle is its reciprocal
	approxSolidAngle := area * cos / (d * d)
	if math.Abs(got*approxSolidAngle-1) > 0.01 {
		t.Errorf("Expected pdf·Ω ≈ 1, got %f", got*approxSolidAngle)
	}
}
