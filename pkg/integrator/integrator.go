package integrator

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance arriving along ray
	RayColor(ray core.Ray, scene core.Scene, sampler core.Sampler) core.Color
}

// Config controls path termination and direct light sampling
type Config struct {
	MaxDepth      int        // Maximum number of bounces; 0 renders black
	Background    core.Color // Radiance for rays that escape the scene
	LightSampling bool       // Mix light-directed samples into diffuse bounces
}
