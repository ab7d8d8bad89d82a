package integrator

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/pdf"
)

// shadowAcneEpsilon keeps secondary rays from re-hitting their own surface
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with
// importance sampling of lights and materials
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: config}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene core.Scene, sampler core.Sampler) core.Color {
	return pt.rayColor(ray, scene, sampler, pt.config.MaxDepth)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, scene core.Scene, sampler core.Sampler, depth int) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := scene.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return pt.config.Background
	}

	colorEmitted := hit.Material.Emitted(ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	if scatter.IsSpecular() {
		return colorEmitted.Add(scatter.Attenuation.MultiplyVec(
			pt.rayColor(scatter.Specular, scene, sampler, depth-1)))
	}

	return colorEmitted.Add(pt.diffuseColor(ray, hit, scatter, scene, sampler, depth))
}

// diffuseColor estimates scattered radiance by sampling a direction from the
// material PDF, mixed 50/50 with a light PDF when lights are available
func (pt *PathTracingIntegrator) diffuseColor(ray core.Ray, hit *core.HitRecord, scatter core.ScatterResult, scene core.Scene, sampler core.Sampler, depth int) core.Color {
	samplingPDF := scatter.PDF
	if lights := scene.Lights(); pt.config.LightSampling && lights != nil {
		samplingPDF = pdf.NewMixturePDF(pdf.NewHittablePDF(lights, hit.Point), scatter.PDF)
	}

	scattered := core.NewRayAtTime(hit.Point, samplingPDF.Generate(sampler), ray.Time)
	pdfValue := samplingPDF.Value(scattered.Direction)
	if pdfValue <= 0 {
		return core.Color{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	colorFromScatter := scatter.Attenuation.
		MultiplyVec(pt.rayColor(scattered, scene, sampler, depth-1)).
		Multiply(scatteringPDF / pdfValue)

	return colorFromScatter
}
