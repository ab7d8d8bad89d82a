package geometry

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Point    // One corner of the quad
	U        core.Point    // First edge vector
	V        core.Point    // Second edge vector
	Normal   core.Point    // Unit normal (direction of U × V)
	Material core.Material // Material of the quad
	D        float64       // Plane equation constant: normal · p = D
	W        core.Point    // n / (n · n) for planar coordinates
	area     float64
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Point, material core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// Box spanning both diagonals
	diagonal1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diagonal2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        n.Divide(n.Dot(n)),
		area:     n.Length(),
		bbox:     diagonal1.Union(diagonal2),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Parallel rays miss
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Surrounds(t) {
		return nil, false
	}

	// Planar coordinates of the hit point relative to the corner
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	if !isInterior(alpha, beta) {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
		U:        alpha,
		V:        beta,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

func isInterior(alpha, beta float64) bool {
	unit := core.NewInterval(0, 1)
	return unit.Contains(alpha) && unit.Contains(beta)
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// Area returns the surface area of the quad
func (q *Quad) Area() float64 {
	return q.area
}

// PDFValue converts the uniform area density into solid angle as seen
// from origin; directions that miss the quad have zero density
func (q *Quad) PDFValue(origin, direction core.Point) float64 {
	hit, isHit := q.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(q.Normal) / direction.Length())

	return distanceSquared / (cosine * q.area)
}

// Random returns the vector from origin to a uniformly chosen point on the quad
func (q *Quad) Random(origin core.Point, sampler core.Sampler) core.Point {
	s := sampler.Get2D()
	p := q.Corner.Add(q.U.Multiply(s.X)).Add(q.V.Multiply(s.Y))
	return p.Subtract(origin)
}
