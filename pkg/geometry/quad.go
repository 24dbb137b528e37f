package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors.
// Its geometric normal is U × V, which is the side a quad light emits from.
type Quad struct {
	Corner   core.Vec3 // One corner of the quad
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Normal   core.Vec3 // Unit normal (U × V normalized)
	mat      material.Material
	d        float64   // Plane equation constant: normal · p = d
	w        core.Vec3 // Cached vector for planar coordinates
	area     float64
	emissive bool
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		mat:      mat,
		d:        normal.Dot(corner),
		w:        cross.Multiply(1.0 / cross.Dot(cross)),
		area:     cross.Length(),
		emissive: hasEmission(mat),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*Intersection, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-12 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	// Planar coordinates of the hit point relative to the corner
	hitVector := ray.At(t).Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	return newIntersection(q, ray, t, q.Normal), true
}

// BoundingBox returns the padded bounds of the quad
func (q *Quad) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	).Pad(1e-4)
}

// Area returns |U × V|
func (q *Quad) Area() float64 {
	return q.area
}

// SamplePoint samples uniformly on the quad surface
func (q *Quad) SamplePoint(sample core.Vec2) (core.Vec3, core.Vec3) {
	point := q.Corner.Add(q.U.Multiply(sample.X)).Add(q.V.Multiply(sample.Y))
	return point, q.Normal
}

// Material returns the quad's material
func (q *Quad) Material() material.Material {
	return q.mat
}

// HasEmission reports whether the quad is a light
func (q *Quad) HasEmission() bool {
	return q.emissive
}
