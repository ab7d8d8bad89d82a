package core

import "math"

// aabbPadding keeps planar primitives from producing zero-thickness boxes
const aabbPadding = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates a box from per-axis intervals, padding every axis slightly
func NewAABB(x, y, z Interval) AABB {
	return AABB{
		X: x.Expand(aabbPadding),
		Y: y.Expand(aabbPadding),
		Z: z.Expand(aabbPadding),
	}
}

// EmptyAABB bounds nothing; it is the identity for Union
func EmptyAABB() AABB {
	return AABB{X: EmptyInterval(), Y: EmptyInterval(), Z: EmptyInterval()}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Point) AABB {
	if len(points) == 0 {
		return EmptyAABB()
	}

	minP := points[0]
	maxP := points[0]
	for _, point := range points[1:] {
		minP.X = math.Min(minP.X, point.X)
		minP.Y = math.Min(minP.Y, point.Y)
		minP.Z = math.Min(minP.Z, point.Z)

		maxP.X = math.Max(maxP.X, point.X)
		maxP.Y = math.Max(maxP.Y, point.Y)
		maxP.Z = math.Max(maxP.Z, point.Z)
	}

	return NewAABB(
		NewInterval(minP.X, maxP.X),
		NewInterval(minP.Y, maxP.Y),
		NewInterval(minP.Z, maxP.Z),
	)
}

// Axis returns the interval for axis 0=X, 1=Y, 2=Z
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Hit intersects the ray with the box using the slab method and returns the
// parametric interval over which the ray is inside the box
func (aabb AABB) Hit(ray Ray, rayT Interval) (Interval, bool) {
	start, end := rayT.Min, rayT.Max

	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		origin := ray.Origin.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)

		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		// NaN (origin on a slab plane of a parallel ray) fails both tests
		// and leaves the interval untouched
		if t0 > start {
			start = t0
		}
		if t1 < end {
			end = t1
		}

		if end <= start {
			return Interval{}, false
		}
	}

	return NewInterval(start, end), true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: aabb.X.Union(other.X),
		Y: aabb.Y.Union(other.Y),
		Z: aabb.Z.Union(other.Z),
	}
}

// Translate returns the box moved by offset
func (aabb AABB) Translate(offset Point) AABB {
	return AABB{
		X: aabb.X.Shift(offset.X),
		Y: aabb.Y.Shift(offset.Y),
		Z: aabb.Z.Shift(offset.Z),
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Point {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Point {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Point {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	x, y, z := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if x > y && x > z {
		return 0
	}
	if y > z {
		return 1
	}
	return 2
}

// Corners enumerates the eight corners of the box
func (aabb AABB) Corners() [8]Point {
	var corners [8]Point
	n := 0
	for _, x := range [2]float64{aabb.X.Min, aabb.X.Max} {
		for _, y := range [2]float64{aabb.Y.Min, aabb.Y.Max} {
			for _, z := range [2]float64{aabb.Z.Min, aabb.Z.Max} {
				corners[n] = NewVec3(x, y, z)
				n++
			}
		}
	}
	return corners
}

// IsValid returns true if min <= max on every axis
func (aabb AABB) IsValid() bool {
	return aabb.X.Min <= aabb.X.Max &&
		aabb.Y.Min <= aabb.Y.Max &&
		aabb.Z.Min <= aabb.Z.Max
}
