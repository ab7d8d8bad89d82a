package core

import (
	"sort"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// A node holds either a single child (Right is nil) or an ordered pair.
type BVHNode struct {
	Box   AABB
	Left  Hittable
	Right Hittable
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of hittables
func NewBVH(objects []Hittable) *BVH {
	if len(objects) == 0 {
		return &BVH{Root: nil}
	}

	// Sorting happens in place, so never touch the caller's slice
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return &BVH{Root: buildBVH(objectsCopy)}
}

// buildBVH recursively builds the tree with a median split along the longest axis
func buildBVH(objects []Hittable) *BVHNode {
	boundingBox := EmptyAABB()
	for _, object := range objects {
		boundingBox = boundingBox.Union(object.BoundingBox())
	}

	switch len(objects) {
	case 1:
		return &BVHNode{Box: boundingBox, Left: objects[0]}
	case 2:
		return &BVHNode{Box: boundingBox, Left: objects[0], Right: objects[1]}
	}

	sortByAxis(objects, boundingBox.LongestAxis())

	mid := len(objects) / 2
	return &BVHNode{
		Box:   boundingBox,
		Left:  buildBVH(objects[:mid]),
		Right: buildBVH(objects[mid:]),
	}
}

// sortByAxis orders objects by the minimum of their bounding box along axis
func sortByAxis(objects []Hittable, axis int) {
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].BoundingBox().Axis(axis).Min < objects[j].BoundingBox().Axis(axis).Min
	})
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray Ray, rayT Interval) (*HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.Root.Hit(ray, rayT)
}

// BoundingBox returns the root box
func (bvh *BVH) BoundingBox() AABB {
	if bvh.Root == nil {
		return EmptyAABB()
	}
	return bvh.Root.Box
}

// Hit tests the node box first and only descends on a box hit
func (node *BVHNode) Hit(ray Ray, rayT Interval) (*HitRecord, bool) {
	if _, hitBox := node.Box.Hit(ray, rayT); !hitBox {
		return nil, false
	}

	leftHit, hitLeft := node.Left.Hit(ray, rayT)
	if node.Right == nil {
		return leftHit, hitLeft
	}

	upper := rayT.Max
	if hitLeft {
		upper = leftHit.T
	}
	if rightHit, hitRight := node.Right.Hit(ray, NewInterval(rayT.Min, upper)); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the node box
func (node *BVHNode) BoundingBox() AABB {
	return node.Box
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
	Primitives int // Objects referenced by leaf nodes
}

// Stats walks the tree and collects structural statistics
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{}
	if bvh.Root != nil {
		collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

func collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	isLeaf := true
	for _, child := range []Hittable{node.Left, node.Right} {
		if child == nil {
			continue
		}
		if inner, ok := child.(*BVHNode); ok {
			isLeaf = false
			collectStats(inner, depth+1, stats)
		} else {
			stats.Primitives++
		}
	}
	if isLeaf {
		stats.LeafNodes++
	}
}
