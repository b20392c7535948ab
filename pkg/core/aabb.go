package core

import (
	"cmp"
	"math"
)

// Axis names one of the three coordinate axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// AABB represents an axis-aligned bounding box made of three closed intervals.
// The zero value is the empty box, a single point at the origin.
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates the box spanned by two corner points given in any order
func NewAABB(a, b Vec3) AABB {
	return AABB{
		Min: NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max: NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
	}
}

// EmptyAABB returns the [0,0] box on every axis
func EmptyAABB() AABB {
	return AABB{}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	box := NewAABB(points[0], points[0])
	for _, point := range points[1:] {
		box = box.Union(NewAABB(point, point))
	}
	return box
}

// Interval returns the extent of the box along an axis
func (aabb AABB) Interval(axis Axis) Interval {
	return Interval{Min: aabb.Min.Component(axis), Max: aabb.Max.Component(axis)}
}

// IntersectsRay tests whether a ray crosses the box within rayT using the slab method.
// Division by a zero direction component yields infinities which the comparisons
// below handle, and NaN slab bounds never tighten the running interval.
func (aabb AABB) IntersectsRay(ray Ray, rayT Interval) bool {
	tMin, tMax := rayT.Min, rayT.Max

	for axis := AxisX; axis <= AxisZ; axis++ {
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)

		t0 := (aabb.Min.Component(axis) - origin) / direction
		t1 := (aabb.Max.Component(axis) - origin) / direction
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Pad widens every axis thinner than delta to exactly delta around its middle.
// Flat boxes (axis-aligned quads) would otherwise reject every ray in the slab test.
func (aabb AABB) Pad(delta float64) AABB {
	padded := aabb
	for axis := AxisX; axis <= AxisZ; axis++ {
		interval := aabb.Interval(axis)
		if interval.Size() >= delta {
			continue
		}
		mid := 0.5 * (interval.Min + interval.Max)
		padded.Min = padded.Min.withComponent(axis, mid-delta/2)
		padded.Max = padded.Max.withComponent(axis, mid+delta/2)
	}
	return padded
}

// Offset returns the box translated by the given vector
func (aabb AABB) Offset(offset Vec3) AABB {
	return AABB{Min: aabb.Min.Add(offset), Max: aabb.Max.Add(offset)}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis with the longest extent.
// Ties prefer Z over Y over X.
func (aabb AABB) LongestAxis() Axis {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return AxisX
	}
	if size.Y > size.Z {
		return AxisY
	}
	return AxisZ
}

// Corners returns the eight corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		x := aabb.Min.X
		if i&1 != 0 {
			x = aabb.Max.X
		}
		y := aabb.Min.Y
		if i&2 != 0 {
			y = aabb.Max.Y
		}
		z := aabb.Min.Z
		if i&4 != 0 {
			z = aabb.Max.Z
		}
		corners[i] = NewVec3(x, y, z)
	}
	return corners
}

// CompareByAxis orders two boxes by the start of their interval on an axis
func CompareByAxis(a, b AABB, axis Axis) int {
	return cmp.Compare(a.Min.Component(axis), b.Min.Component(axis))
}
