package geometry

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// Sphere represents a sphere shape, optionally moving linearly over the
// shutter interval
type Sphere struct {
	Center   core.Ray // Center at time 0 plus motion per unit time
	Radius   float64
	Material core.Material
	moving   bool
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Point, radius float64, material core.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)

	return &Sphere{
		Center:   core.NewRay(center, core.NewVec3(0, 0, 0)),
		Radius:   radius,
		Material: material,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere whose center moves from center1 at time 0
// to center2 at time 1
func NewMovingSphere(center1, center2 core.Point, radius float64, material core.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)

	// Bounding box covers both ends of the motion
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))

	return &Sphere{
		Center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   radius,
		Material: material,
		moving:   true,
		bbox:     box1.Union(box2),
	}
}

// Hit tests if a ray intersects with the sphere
// A sphere of radius zero is never hit.
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	if s.Radius == 0 {
		return nil, false
	}

	currentCenter := s.Center.At(ray.Time)

	// Vector from ray origin to sphere center
	oc := currentCenter.Subtract(ray.Origin)

	// Quadratic equation coefficients with b = -2h
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal from center to hit point
	outwardNormal := hitRecord.Point.Subtract(currentCenter).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.U, hitRecord.V = sphereUV(outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u wraps around the Y axis starting at X=-1, v runs from Y=-1 to Y=+1.
func sphereUV(p core.Point) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// PDFValue returns the solid-angle density of sampling direction toward
// the sphere from origin, or zero when the direction misses it
func (s *Sphere) PDFValue(origin, direction core.Point) float64 {
	s.mustBeStatic()

	if _, hit := s.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1))); !hit {
		return 0
	}

	distanceSquared := s.Center.Origin.Subtract(origin).LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		// Inside the sphere every direction reaches it
		return 1 / (4 * math.Pi)
	}

	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random samples a direction from origin uniformly inside the cone the
// sphere subtends
func (s *Sphere) Random(origin core.Point, sampler core.Sampler) core.Point {
	s.mustBeStatic()

	direction := s.Center.Origin.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		return core.RandomUnitVector(sampler)
	}

	uvw := core.NewOnb(direction)
	return uvw.Transform(core.RandomToSphere(s.Radius, distanceSquared, sampler))
}

func (s *Sphere) mustBeStatic() {
	if s.moving {
		panic("geometry: light sampling is not supported for moving spheres")
	}
}
