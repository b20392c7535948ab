package core

import (
	"slices"
)

// bvhNode is either an internal node referencing two children by index or a
// leaf holding one object. Children may both reference the same leaf.
type bvhNode struct {
	bbox        AABB
	left, right int
	object      Hittable // non-nil for leaf nodes
}

func (n *bvhNode) isLeaf() bool {
	return n.object != nil
}

// BVH is a bounding volume hierarchy stored as a flat node arena.
// The root is always node 0 and the tree is read-only after construction,
// so concurrent queries are safe.
type BVH struct {
	nodes []bvhNode
}

// NewBVH constructs a BVH over the given objects. It panics on an empty input.
func NewBVH(objects []Hittable) *BVH {
	if len(objects) == 0 {
		panic("bvh: cannot build a hierarchy over zero objects")
	}

	// Sort a private copy so callers keep their ordering
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	// Slot 0 is reserved for the root, which is built last
	bvh := &BVH{nodes: make([]bvhNode, 1, 2*len(objects)+1)}
	rootID := bvh.build(objectsCopy)

	// Every child index is smaller than rootID, so dropping its old slot is safe
	bvh.nodes[0] = bvh.nodes[rootID]
	bvh.nodes = bvh.nodes[:rootID]
	return bvh
}

// build recursively builds the subtree over objects and returns its node index
func (bvh *BVH) build(objects []Hittable) int {
	switch len(objects) {
	case 1:
		return bvh.addLeaf(objects[0])
	case 2:
		left := bvh.addLeaf(objects[0])
		right := bvh.addLeaf(objects[1])
		return bvh.addNode(left, right)
	}

	// Median split along the longest axis of the combined box
	var bbox AABB
	for i, object := range objects {
		if i == 0 {
			bbox = object.BoundingBox()
		} else {
			bbox = bbox.Union(object.BoundingBox())
		}
	}
	axis := bbox.LongestAxis()
	slices.SortStableFunc(objects, func(a, b Hittable) int {
		return CompareByAxis(a.BoundingBox(), b.BoundingBox(), axis)
	})

	mid := len(objects) / 2
	left := bvh.build(objects[:mid])
	right := bvh.build(objects[mid:])
	return bvh.addNode(left, right)
}

func (bvh *BVH) addLeaf(object Hittable) int {
	bvh.nodes = append(bvh.nodes, bvhNode{bbox: object.BoundingBox(), object: object})
	return len(bvh.nodes) - 1
}

func (bvh *BVH) addNode(left, right int) int {
	bbox := bvh.nodes[left].bbox.Union(bvh.nodes[right].bbox)
	bvh.nodes = append(bvh.nodes, bvhNode{bbox: bbox, left: left, right: right})
	return len(bvh.nodes) - 1
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray Ray, rayT Interval, sampler Sampler) (*HitRecord, bool) {
	return bvh.hitNode(0, ray, rayT, sampler)
}

// hitNode tests the left subtree first, then the right subtree with the
// range shrunk to the left hit. The right hit wins when both report one.
func (bvh *BVH) hitNode(id int, ray Ray, rayT Interval, sampler Sampler) (*HitRecord, bool) {
	node := &bvh.nodes[id]
	if node.isLeaf() {
		return node.object.Hit(ray, rayT, sampler)
	}

	if !node.bbox.IntersectsRay(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := bvh.hitNode(node.left, ray, rayT, sampler)

	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	if rightHit, hitRight := bvh.hitNode(node.right, ray, rightT, sampler); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the bounding box of the root node
func (bvh *BVH) BoundingBox() AABB {
	return bvh.nodes[0].bbox
}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
}

// Stats walks the tree and returns node counts and depth
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{TotalNodes: len(bvh.nodes)}
	var walk func(id, depth int)
	walk = func(id, depth int) {
		stats.MaxDepth = max(stats.MaxDepth, depth)
		node := &bvh.nodes[id]
		if node.isLeaf() {
			return
		}
		walk(node.left, depth+1)
		walk(node.right, depth+1)
	}
	walk(0, 0)

	for i := range bvh.nodes {
		if bvh.nodes[i].isLeaf() {
			stats.LeafNodes++
		}
	}
	return stats
}
