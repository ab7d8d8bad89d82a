package core

import (
	"fmt"
	"math"
)

// Coords tags a Vec3 that holds a position or a direction
type Coords struct{}

// RGB tags a Vec3 that holds a linear color
type RGB struct{}

// Vec3 represents a 3D vector. Tag is a zero-sized role marker so that
// points and colors share one implementation but cannot be mixed by accident.
type Vec3[Tag any] struct {
	X, Y, Z float64
}

// Point is a position or direction in world space
type Point = Vec3[Coords]

// Color is a linear RGB color
type Color = Vec3[RGB]

// NewVec3 creates a new point/direction
func NewVec3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{X: r, Y: g, Z: b}
}

// Add returns the sum of two vectors
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3[T]) Subtract(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3[T]) Multiply(scalar float64) Vec3[T] {
	return Vec3[T]{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a non-zero scalar
func (v Vec3[T]) Divide(scalar float64) Vec3[T] {
	if scalar == 0 {
		panic("core: division of vector by zero")
	}
	return v.Multiply(1.0 / scalar)
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3[T]) MultiplyVec(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Negate returns the negative of the vector
func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3[T]) Dot(other Vec3[T]) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3[T]) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3[T]) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// A zero-length vector is a caller bug and panics.
func (v Vec3[T]) Normalize() Vec3[T] {
	length := v.Length()
	if length == 0 {
		panic("core: cannot normalize zero-length vector")
	}
	return v.Multiply(1.0 / length)
}

// NearZero reports whether the vector is close to zero in all dimensions
func (v Vec3[T]) NearZero() bool {
	const s = 1e-8
	return math.Abs(v.X) < s && math.Abs(v.Y) < s && math.Abs(v.Z) < s
}

// SqrtAxis takes the square root of each component, mapping negatives to zero
func (v Vec3[T]) SqrtAxis() Vec3[T] {
	sqrtPos := func(x float64) float64 {
		if x > 0 {
			return math.Sqrt(x)
		}
		return 0
	}
	return Vec3[T]{sqrtPos(v.X), sqrtPos(v.Y), sqrtPos(v.Z)}
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3[T]) Clamp(minVal, maxVal float64) Vec3[T] {
	return Vec3[T]{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// Axis returns the component for axis 0=X, 1=Y, 2=Z
func (v Vec3[T]) Axis(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Luminance returns the perceptual luminance of an RGB color
func (v Vec3[T]) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// Equals checks if two vectors are exactly equal
func (v Vec3[T]) Equals(other Vec3[T]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// String formats the vector as (x, y, z)
func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
