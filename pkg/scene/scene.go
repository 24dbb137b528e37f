package scene

import (
	"github.com/pkg/errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
)

// DefaultRussianRoulette is the continuation probability used when a scene
// does not set one
const DefaultRussianRoulette = 0.8

// CameraConfig holds the recommended view for a scene
type CameraConfig struct {
	Eye    core.Vec3 // Fixed eye position
	FOV    float64   // Vertical field of view in degrees
	Width  int       // Recommended image width
	Height int       // Recommended image height
}

// Scene is an immutable snapshot of everything the integrator reads: the
// objects, the intersector built over them, the light sampler and the
// Russian-roulette continuation probability. All mutation happens in New;
// afterward a Scene is shared by reference across concurrent samples.
type Scene struct {
	objects         []geometry.Object
	intersector     geometry.Intersector
	lights          *lights.AreaLightSampler
	russianRoulette float64
	camera          CameraConfig
	naive           bool
}

// Option customizes scene construction
type Option func(*Scene)

// WithRussianRoulette sets the continuation probability, which must lie in (0, 1]
func WithRussianRoulette(p float64) Option {
	return func(s *Scene) { s.russianRoulette = p }
}

// WithCamera sets the recommended view
func WithCamera(camera CameraConfig) Option {
	return func(s *Scene) { s.camera = camera }
}

// WithNaiveIntersector tests every object per query instead of building a BVH
func WithNaiveIntersector() Option {
	return func(s *Scene) { s.naive = true }
}

// New builds the scene: it copies the object list, builds the intersector
// and the light sampler, and validates the configuration
func New(objects []geometry.Object, opts ...Option) (*Scene, error) {
	s := &Scene{
		russianRoulette: DefaultRussianRoulette,
		camera: CameraConfig{
			Eye:    core.NewVec3(278, 273, -800),
			FOV:    40,
			Width:  784,
			Height: 784,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	if len(objects) == 0 {
		return nil, errors.New("scene has no objects")
	}
	if !(s.russianRoulette > 0 && s.russianRoulette <= 1) {
		return nil, errors.Errorf("russian roulette probability %v outside (0, 1]", s.russianRoulette)
	}

	s.objects = make([]geometry.Object, len(objects))
	copy(s.objects, objects)

	if s.naive {
		s.intersector = geometry.ObjectList(s.objects)
	} else {
		s.intersector = geometry.NewBVH(s.objects)
	}
	s.lights = lights.NewAreaLightSampler(s.objects)

	return s, nil
}

// Intersect returns the nearest hit along the ray
func (s *Scene) Intersect(ray core.Ray) geometry.Intersection {
	return s.intersector.Intersect(ray)
}

// SampleLight samples a point on the scene's emissive surfaces
func (s *Scene) SampleLight(sampler core.Sampler) (lights.LightSample, bool) {
	return s.lights.Sample(sampler)
}

// Lights returns the scene's light sampler
func (s *Scene) Lights() *lights.AreaLightSampler {
	return s.lights
}

// RussianRoulette returns the path continuation probability
func (s *Scene) RussianRoulette() float64 {
	return s.russianRoulette
}

// Camera returns the recommended view
func (s *Scene) Camera() CameraConfig {
	return s.camera
}

// ObjectCount returns the number of objects in the scene
func (s *Scene) ObjectCount() int {
	return len(s.objects)
}

// BVHStats describes the acceleration structure; ok is false when the scene
// was built with the naive intersector
func (s *Scene) BVHStats() (geometry.BVHStats, bool) {
	bvh, ok := s.intersector.(*geometry.BVH)
	if !ok {
		return geometry.BVHStats{}, false
	}
	return bvh.Stats(), true
}
