package pdf

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// CosinePDF samples directions with density proportional to the cosine
// against a surface normal
type CosinePDF struct {
	uvw core.Onb
}

// NewCosinePDF creates a cosine-weighted PDF around normal
func NewCosinePDF(normal core.Point) *CosinePDF {
	return &CosinePDF{uvw: core.NewOnb(normal)}
}

// Value returns max(0, cosθ/π)
func (p *CosinePDF) Value(direction core.Point) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	return math.Max(0, cosine/math.Pi)
}

// Generate returns a cosine-weighted direction in the normal's hemisphere
func (p *CosinePDF) Generate(sampler core.Sampler) core.Point {
	return p.uvw.Transform(core.RandomCosineDirection(sampler))
}
