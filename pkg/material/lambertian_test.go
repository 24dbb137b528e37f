package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_PDFMatchesSampling(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	sampler := core.NewSampler(42)

	normal := core.NewVec3(0, 0, 1)
	wo := core.NewVec3(0, 0, 1)

	for i := 0; i < 100; i++ {
		wi := lambertian.Sample(wo, normal, sampler.Get2D())

		cosTheta := wi.Dot(normal)
		if cosTheta < 0 {
			t.Fatalf("Sampled direction below surface: %v", wi)
		}

		expectedPDF := cosTheta / math.Pi
		if pdf := lambertian.PDF(wi, wo, normal); math.Abs(pdf-expectedPDF) > 1e-10 {
			t.Errorf("PDF mismatch: got %f, expected %f", pdf, expectedPDF)
		}
	}
}

func TestLambertian_EnergyConservation(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	normal := core.NewVec3(0, 0, 1)

	fr := lambertian.Evaluate(core.NewVec3(0, 0, 1), normal, normal)
	expected := albedo.Multiply(1.0 / math.Pi)
	if fr.Subtract(expected).Length() > 1e-10 {
		t.Errorf("BRDF mismatch: got %v, expected %v", fr, expected)
	}

	// Monte Carlo estimate of the albedo: E[fr * cos / pdf] == albedo
	sampler := core.NewSampler(1)
	var sum core.Vec3
	const n = 1000
	for i := 0; i < n; i++ {
		wi := lambertian.Sample(normal, normal, sampler.Get2D())
		pdf := lambertian.PDF(wi, normal, normal)
		if pdf <= 0 {
			continue
		}
		sum = sum.Add(lambertian.Evaluate(wi, normal, normal).Multiply(wi.Dot(normal) / pdf))
	}
	if mean := sum.Multiply(1.0 / n); mean.Subtract(albedo).Length() > 1e-9 {
		t.Errorf("Expected reflected fraction %v, got %v", albedo, mean)
	}
}

func TestLambertian_BelowSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	normal := core.NewVec3(0, 1, 0)
	below := core.NewVec3(0, -1, 0)

	if fr := lambertian.Evaluate(below, normal, normal); !fr.IsZero() {
		t.Errorf("Expected zero BRDF below surface, got %v", fr)
	}
	if pdf := lambertian.PDF(below, normal, normal); pdf != 0 {
		t.Errorf("Expected zero PDF below surface, got %f", pdf)
	}
}
