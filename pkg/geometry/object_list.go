package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ObjectList is the naive Intersector: every query tests every object
type ObjectList []Object

// Intersect implements Intersector
func (l ObjectList) Intersect(ray core.Ray) Intersection {
	if hit, ok := hitObjects(l, ray, RayEpsilon, math.Inf(1)); ok {
		return *hit
	}
	return Intersection{}
}

// hitObjects returns the closest hit among objects in (tMin, tMax)
func hitObjects(objects []Object, ray core.Ray, tMin, tMax float64) (*Intersection, bool) {
	var closestHit *Intersection
	closestSoFar := tMax

	for _, obj := range objects {
		if hit, ok := obj.Hit(ray, tMin, closestSoFar); ok {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
