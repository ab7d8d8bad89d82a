package pdf

import "github.com/df07/go-tiled-pathtracer/pkg/core"

// HittablePDF samples directions from a fixed origin toward a light source
type HittablePDF struct {
	lights core.LightSource
	origin core.Point
}

// NewHittablePDF creates a PDF aimed at lights as seen from origin
func NewHittablePDF(lights core.LightSource, origin core.Point) *HittablePDF {
	return &HittablePDF{lights: lights, origin: origin}
}

// Value returns the light density of direction as seen from the origin
func (p *HittablePDF) Value(direction core.Point) float64 {
	return p.lights.PDFValue(p.origin, direction)
}

// Generate samples a direction from the origin toward the lights
func (p *HittablePDF) Generate(sampler core.Sampler) core.Point {
	return p.lights.Random(p.origin, sampler)
}
