package core

// Ray represents a ray with an origin, a direction and the instant it was cast
type Ray struct {
	Origin    Point
	Direction Point
	Time      float64 // in [0, 1], used for motion blur
}

// NewRay creates a new ray at time 0
func NewRay(origin, direction Point) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAtTime creates a new ray cast at the given time
func NewRayAtTime(origin, direction Point, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}
