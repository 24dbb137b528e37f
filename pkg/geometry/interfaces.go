package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Object is the capability set shared by every scene primitive. The
// intersector and the light sampler only ever see this interface.
type Object interface {
	// Hit tests the ray against the object within (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*Intersection, bool)

	// BoundingBox returns the object's axis-aligned bounds
	BoundingBox() core.AABB

	// Area returns the object's surface area
	Area() float64

	// SamplePoint returns a point distributed uniformly by area on the
	// surface together with the outward geometric normal there
	SamplePoint(sample core.Vec2) (point, normal core.Vec3)

	// Material returns the BRDF capability of the surface
	Material() material.Material

	// HasEmission reports whether the object is a light source
	HasEmission() bool
}

// Intersection is the result of a nearest-hit query
type Intersection struct {
	Happened    bool              // Whether anything was hit
	T           float64           // Parameter t along the ray
	Point       core.Vec3         // Point of intersection
	Normal      core.Vec3         // Shading normal, facing the incoming ray
	FrontFace   bool              // Whether the ray hit the side the geometric normal faces
	Object      Object            // The object that was hit
	Material    material.Material // Material of the hit object
	Emission    core.Vec3         // Emitted radiance when the object is a light
	HasEmission bool              // Whether the hit object is a light
}

// Intersector answers nearest-hit queries over a fixed set of objects.
// Implementations must be deterministic and safe for concurrent reads.
type Intersector interface {
	Intersect(ray core.Ray) Intersection
}

// RayEpsilon is the minimum hit distance, keeping secondary rays from
// re-hitting the surface they start on
const RayEpsilon = 1e-4

// newIntersection fills an intersection record for obj at parameter t
func newIntersection(obj Object, ray core.Ray, t float64, outwardNormal core.Vec3) *Intersection {
	mat := obj.Material()
	emission, emits := material.EmissionOf(mat)

	hit := &Intersection{
		Happened:    true,
		T:           t,
		Point:       ray.At(t),
		Object:      obj,
		Material:    mat,
		Emission:    emission,
		HasEmission: emits,
	}
	hit.setFaceNormal(ray, outwardNormal)
	return hit
}

// setFaceNormal sets the normal vector and determines front/back face
func (h *Intersection) setFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// hasEmission reports whether a material emits any light
func hasEmission(m material.Material) bool {
	_, emits := material.EmissionOf(m)
	return emits
}
