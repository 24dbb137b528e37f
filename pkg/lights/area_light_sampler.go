package lights

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// LightSample contains information about a sampled point on a light
type LightSample struct {
	Point    core.Vec3       // Point on the light source
	Normal   core.Vec3       // Geometric normal of the light at Point
	Emission core.Vec3       // Emitted radiance at Point
	Light    geometry.Object // The emissive object that was chosen
	PDF      float64         // Probability density per unit area
}

// AreaLightSampler draws points from the union of all emissive surfaces with
// probability proportional to surface area. It is built once from a
// read-only object list and never mutated afterward.
type AreaLightSampler struct {
	lights    []geometry.Object
	totalArea float64
}

// NewAreaLightSampler collects the emissive objects and their total area
func NewAreaLightSampler(objects []geometry.Object) *AreaLightSampler {
	sampler := &AreaLightSampler{}
	for _, obj := range objects {
		if obj.HasEmission() {
			sampler.lights = append(sampler.lights, obj)
			sampler.totalArea += obj.Area()
		}
	}
	return sampler
}

// Sample picks an emissive object with probability area/TotalArea and a
// point uniformly on it. The returned density is 1/TotalArea in area
// measure. Returns false when the scene has no emissive area.
func (s *AreaLightSampler) Sample(sampler core.Sampler) (LightSample, bool) {
	if s.totalArea <= 0 {
		return LightSample{}, false
	}

	p := sampler.Get1D() * s.totalArea
	chosen := s.lights[len(s.lights)-1]
	runningArea := 0.0
	for _, light := range s.lights {
		runningArea += light.Area()
		if p <= runningArea {
			chosen = light
			break
		}
	}

	point, normal := chosen.SamplePoint(sampler.Get2D())
	emission, _ := emissionOf(chosen)

	return LightSample{
		Point:    point,
		Normal:   normal,
		Emission: emission,
		Light:    chosen,
		PDF:      1.0 / s.totalArea,
	}, true
}

// PDF returns the area-measure density of any point on any light
func (s *AreaLightSampler) PDF() float64 {
	if s.totalArea <= 0 {
		return 0
	}
	return 1.0 / s.totalArea
}

// TotalArea returns the summed area of every emissive object
func (s *AreaLightSampler) TotalArea() float64 {
	return s.totalArea
}

// LightCount returns the number of emissive objects
func (s *AreaLightSampler) LightCount() int {
	return len(s.lights)
}
