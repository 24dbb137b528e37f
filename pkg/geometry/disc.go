package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Disc represents a one-sided circular disc in 3D space
type Disc struct {
	Center   core.Vec3 // Center of the disc
	Normal   core.Vec3 // Unit normal, the side a disc light emits from
	Radius   float64   // Radius of the disc
	Right    core.Vec3 // In-plane unit vector perpendicular to Normal
	Up       core.Vec3 // In-plane unit vector perpendicular to Normal and Right
	mat      material.Material
	emissive bool
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64, mat material.Material) *Disc {
	n := normal.Normalize()
	right, up := core.OrthonormalBasis(n)

	return &Disc{
		Center:   center,
		Normal:   n,
		Radius:   radius,
		Right:    right,
		Up:       up,
		mat:      mat,
		emissive: hasEmission(mat),
	}
}

// Hit tests if a ray intersects with the disc
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64) (*Intersection, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-12 {
		return nil, false
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	if ray.At(t).Subtract(d.Center).LengthSquared() > d.Radius*d.Radius {
		return nil, false
	}

	return newIntersection(d, ray, t, d.Normal), true
}

// BoundingBox returns the padded bounds of the disc
func (d *Disc) BoundingBox() core.AABB {
	// Extent along each axis is radius * sqrt(1 - n_axis²)
	extent := core.NewVec3(
		d.Radius*math.Sqrt(math.Max(0, 1-d.Normal.X*d.Normal.X)),
		d.Radius*math.Sqrt(math.Max(0, 1-d.Normal.Y*d.Normal.Y)),
		d.Radius*math.Sqrt(math.Max(0, 1-d.Normal.Z*d.Normal.Z)),
	)
	return core.NewAABB(d.Center.Subtract(extent), d.Center.Add(extent)).Pad(1e-4)
}

// Area returns πr²
func (d *Disc) Area() float64 {
	return math.Pi * d.Radius * d.Radius
}

// SamplePoint samples uniformly on the disc surface using polar coordinates
func (d *Disc) SamplePoint(sample core.Vec2) (core.Vec3, core.Vec3) {
	r := math.Sqrt(sample.X) * d.Radius
	theta := 2.0 * math.Pi * sample.Y

	point := d.Center.Add(d.Right.Multiply(r * math.Cos(theta))).Add(d.Up.Multiply(r * math.Sin(theta)))
	return point, d.Normal
}

// Material returns the disc's material
func (d *Disc) Material() material.Material {
	return d.mat
}

// HasEmission reports whether the disc is a light
func (d *Disc) HasEmission() bool {
	return d.emissive
}
