package pdf

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// SpherePDF samples directions uniformly over the unit sphere
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere PDF
func NewSpherePDF() SpherePDF {
	return SpherePDF{}
}

// Value returns 1/4π for every direction
func (SpherePDF) Value(direction core.Point) float64 {
	return 1 / (4 * math.Pi)
}

// Generate returns a uniform unit vector
func (SpherePDF) Generate(sampler core.Sampler) core.Point {
	return core.RandomUnitVector(sampler)
}
