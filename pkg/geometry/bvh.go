package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Objects     []Object // Objects for leaf nodes (nil for internal nodes)
}

// BVH is an Intersector backed by a Bounding Volume Hierarchy
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: if we have this many or fewer objects, store them in a leaf node
const leafThreshold = 8

// NewBVH constructs a BVH from a slice of objects. The slice is copied, so
// the caller's ordering is never modified.
func NewBVH(objects []Object) *BVH {
	if len(objects) == 0 {
		return &BVH{}
	}

	objectsCopy := make([]Object, len(objects))
	copy(objectsCopy, objects)

	return &BVH{Root: buildBVH(objectsCopy)}
}

// buildBVH recursively builds the BVH using a midpoint split along the longest axis
func buildBVH(objects []Object) *BVHNode {
	boundingBox := objects[0].BoundingBox()
	for _, obj := range objects[1:] {
		boundingBox = boundingBox.Union(obj.BoundingBox())
	}

	leaf := &BVHNode{BoundingBox: boundingBox, Objects: objects}
	if len(objects) <= leafThreshold {
		return leaf
	}

	axis := boundingBox.LongestAxis()
	lo, hi := core.Axis(boundingBox.Min, axis), core.Axis(boundingBox.Max, axis)
	if hi <= lo {
		return leaf
	}
	splitPos := (lo + hi) * 0.5

	var left, right []Object
	for _, obj := range objects {
		if core.Axis(obj.BoundingBox().Center(), axis) < splitPos {
			left = append(left, obj)
		} else {
			right = append(right, obj)
		}
	}

	// Every center on one side of the midpoint: splitting again would not terminate
	if len(left) == 0 || len(right) == 0 {
		return leaf
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(left),
		Right:       buildBVH(right),
	}
}

// Intersect implements Intersector
func (bvh *BVH) Intersect(ray core.Ray) Intersection {
	if bvh.Root == nil {
		return Intersection{}
	}
	if hit, ok := bvh.hitNode(bvh.Root, ray, RayEpsilon, math.Inf(1)); ok {
		return *hit
	}
	return Intersection{}
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (*Intersection, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	// Leaf: linear search through its objects
	if node.Objects != nil {
		return hitObjects(node.Objects, ray, tMin, tMax)
	}

	var closestHit *Intersection
	closestSoFar := tMax

	if hit, ok := bvh.hitNode(node.Left, ray, tMin, closestSoFar); ok {
		closestSoFar = hit.T
		closestHit = hit
	}
	if hit, ok := bvh.hitNode(node.Right, ray, tMin, closestSoFar); ok {
		closestHit = hit
	}

	return closestHit, closestHit != nil
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	var stats BVHStats
	if bvh.Root != nil {
		bvh.collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes   int
	LeafNodes    int
	MaxDepth     int
	TotalObjects int
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	if node.Objects != nil {
		stats.LeafNodes++
		stats.TotalObjects += len(node.Objects)
		return
	}
	bvh.collectStats(node.Left, depth+1, stats)
	bvh.collectStats(node.Right, depth+1, stats)
}
