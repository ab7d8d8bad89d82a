package geometry

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
)

// ConstantMedium is a participating medium of uniform density filling a
// convex boundary. Rays scatter inside it with an isotropic phase function.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium fills boundary with a medium whose albedo comes from texture
func NewConstantMedium(boundary core.Hittable, density float64, texture core.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropic(texture),
		negInvDensity: -1 / density,
	}
}

// NewConstantMediumFromColor fills boundary with a medium of a solid albedo
func NewConstantMediumFromColor(boundary core.Hittable, density float64, albedo core.Color) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// Hit samples a free-flight distance through the medium. The random number
// is derived from the ray itself so Hit stays free of shared state.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.UniverseInterval())
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, core.NewInterval(entry.T+0.001, math.Inf(1)))
	if !ok {
		return nil, false
	}

	tEnter := math.Max(entry.T, rayT.Min)
	tExit := math.Min(exit.T, rayT.Max)
	if tEnter >= tExit {
		return nil, false
	}
	tEnter = math.Max(tEnter, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (tExit - tEnter) * rayLength
	hitDistance := m.negInvDensity * math.Log(rayHash(ray))
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := tEnter + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}

// rayHash maps a ray to a value in (0, 1] using splitmix64 over its components
func rayHash(ray core.Ray) float64 {
	h := uint64(0x9e3779b97f4a7c15)
	for _, f := range [7]float64{
		ray.Origin.X, ray.Origin.Y, ray.Origin.Z,
		ray.Direction.X, ray.Direction.Y, ray.Direction.Z,
		ray.Time,
	} {
		h = splitmix64(h ^ math.Float64bits(f))
	}
	return float64(h>>11+1) / (1 << 53)
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
