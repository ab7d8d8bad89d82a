package geometry

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// Box is an axis-aligned box made up of 6 quads
type Box struct {
	Material core.Material
	faces    *core.HittableList
}

// NewBox creates the box spanning two opposite corners a and b
func NewBox(a, b core.Point, material core.Material) *Box {
	minP := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	maxP := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(maxP.X-minP.X, 0, 0)
	dy := core.NewVec3(0, maxP.Y-minP.Y, 0)
	dz := core.NewVec3(0, 0, maxP.Z-minP.Z)

	faces := core.NewHittableList(
		NewQuad(core.NewVec3(minP.X, minP.Y, maxP.Z), dx, dy, material),          // front
		NewQuad(core.NewVec3(maxP.X, minP.Y, maxP.Z), dz.Negate(), dy, material), // right
		NewQuad(core.NewVec3(maxP.X, minP.Y, minP.Z), dx.Negate(), dy, material), // back
		NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dz, dy, material),          // left
		NewQuad(core.NewVec3(minP.X, maxP.Y, maxP.Z), dx, dz.Negate(), material), // top
		NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dx, dz, material),          // bottom
	)

	return &Box{Material: material, faces: faces}
}

// Hit returns the nearest face hit
func (b *Box) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	return b.faces.Hit(ray, rayT)
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return b.faces.BoundingBox()
}
