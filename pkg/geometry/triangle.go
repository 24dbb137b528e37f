package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached geometric normal (e1 × e2 normalized)
	e1, e2     core.Vec3 // Cached edges from V0
	area       float64
	mat        material.Material
	emissive   bool
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)
	cross := e1.Cross(e2)

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		normal:   cross.Normalize(),
		e1:       e1,
		e2:       e2,
		area:     0.5 * cross.Length(),
		mat:      mat,
		emissive: hasEmission(mat),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*Intersection, bool) {
	const epsilon = 1e-12

	h := ray.Direction.Cross(t.e2)
	a := t.e1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(t.e1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tHit := f * t.e2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return nil, false
	}

	return newIntersection(t, ray, tHit, t.normal), true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(t.V0, t.V1, t.V2).Pad(1e-4)
}

// Area returns half the length of e1 × e2
func (t *Triangle) Area() float64 {
	return t.area
}

// SamplePoint samples uniformly on the triangle using barycentric mapping
func (t *Triangle) SamplePoint(sample core.Vec2) (core.Vec3, core.Vec3) {
	b0, b1 := core.SampleUniformTriangle(sample)
	point := t.V0.Multiply(b0).Add(t.V1.Multiply(b1)).Add(t.V2.Multiply(1 - b0 - b1))
	return point, t.normal
}

// Material returns the triangle's material
func (t *Triangle) Material() material.Material {
	return t.mat
}

// HasEmission reports whether the triangle is a light
func (t *Triangle) HasEmission() bool {
	return t.emissive
}
