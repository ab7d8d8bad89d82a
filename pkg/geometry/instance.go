package geometry

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// Translate moves a hittable by a fixed offset
type Translate struct {
	Object core.Hittable
	Offset core.Point
	bbox   core.AABB
}

// NewTranslate wraps object so it appears displaced by offset
func NewTranslate(object core.Hittable, offset core.Point) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit moves the ray into object space, intersects, and moves the hit back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Object.Hit(offsetRay, rayT)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the wrapped object's bounds shifted by the offset
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// RotateY rotates a hittable about the Y axis
type RotateY struct {
	Object   core.Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object rotated by angle degrees about the Y axis
func NewRotateY(object core.Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	corners := object.BoundingBox().Corners()
	for i, corner := range corners {
		corners[i] = r.toWorld(corner)
	}
	r.bbox = core.NewAABBFromPoints(corners[:]...)

	return r
}

func (r *RotateY) toObject(p core.Point) core.Point {
	return core.NewVec3(r.cosTheta*p.X-r.sinTheta*p.Z, p.Y, r.sinTheta*p.X+r.cosTheta*p.Z)
}

func (r *RotateY) toWorld(p core.Point) core.Point {
	return core.NewVec3(r.cosTheta*p.X+r.sinTheta*p.Z, p.Y, -r.sinTheta*p.X+r.cosTheta*p.Z)
}

// Hit rotates the ray into object space and the hit back into world space
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(rotated, rayT)
	if !ok {
		return nil, false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the bounds of the rotated object's box corners
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
