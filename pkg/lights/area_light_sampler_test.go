package lights

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	diffuse = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	bright  = material.NewEmissive(core.NewVec3(10, 10, 10))
)

func TestAreaLightSampler_NoLights(t *testing.T) {
	objects := []geometry.Object{
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), diffuse),
	}
	sampler := NewAreaLightSampler(objects)

	if _, found := sampler.Sample(core.NewSampler(1)); found {
		t.Error("Expected no light sample without emissive objects")
	}
	if sampler.PDF() != 0 || sampler.TotalArea() != 0 || sampler.LightCount() != 0 {
		t.Errorf("Expected empty sampler, got pdf=%f area=%f count=%d", sampler.PDF(), sampler.TotalArea(), sampler.LightCount())
	}
}

func TestAreaLightSampler_ProportionalToArea(t *testing.T) {
	small := geometry.NewQuad(core.NewVec3(0, 5, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), bright)
	large := geometry.NewQuad(core.NewVec3(10, 5, 0), core.NewVec3(3, 0, 0), core.NewVec3(0, 0, 1), bright)
	objects := []geometry.Object{
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(100, 0, 0), core.NewVec3(0, 0, 100), diffuse),
		small,
		large,
	}

	sampler := NewAreaLightSampler(objects)
	if sampler.LightCount() != 2 {
		t.Fatalf("Expected 2 lights, got %d", sampler.LightCount())
	}
	if math.Abs(sampler.TotalArea()-4) > 1e-12 {
		t.Fatalf("Expected total emissive area 4, got %f", sampler.TotalArea())
	}

	random := core.NewSampler(42)
	counts := map[geometry.Object]int{}
	const n = 40000
	for i := 0; i < n; i++ {
		sample, found := sampler.Sample(random)
		if !found {
			t.Fatal("Expected a light sample")
		}
		if sample.PDF != 0.25 {
			t.Fatalf("Expected area pdf 1/4, got %f", sample.PDF)
		}
		if sample.Emission != core.NewVec3(10, 10, 10) {
			t.Fatalf("Expected light emission, got %v", sample.Emission)
		}
		counts[sample.Light]++
	}

	got := map[string]float64{
		"small": float64(counts[small]) / n,
		"large": float64(counts[large]) / n,
	}
	want := map[string]float64{"small": 0.25, "large": 0.75}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 0.01)); diff != "" {
		t.Errorf("Light selection frequencies mismatch (-want +got):\n%s", diff)
	}
}

func TestAreaLightSampler_PointsOnChosenLight(t *testing.T) {
	light := geometry.NewQuad(core.NewVec3(-1, 4, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), bright)
	sampler := NewAreaLightSampler([]geometry.Object{light})
	random := core.NewSampler(3)

	for i := 0; i < 500; i++ {
		sample, _ := sampler.Sample(random)
		if sample.Point.Y != 4 || math.Abs(sample.Point.X) > 1 || math.Abs(sample.Point.Z) > 1 {
			t.Fatalf("Sample %v not on light", sample.Point)
		}
		if sample.Normal != light.Normal {
			t.Fatalf("Expected light normal %v, got %v", light.Normal, sample.Normal)
		}
	}
}
