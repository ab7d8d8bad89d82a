package material

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// Metal represents a reflective material with optional fuzziness
type Metal struct {
	nonEmissive
	Albedo core.Color // Color of the metal
	Fuzz   float64    // Fuzziness factor in [0, 1]; 0 is a perfect mirror
}

// NewMetal creates a new metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: max(0, min(fuzz, 1.0))}
}

// Scatter reflects the incoming ray and perturbs it by the fuzz factor.
// Perturbed rays that end up below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := reflectVector(rayIn.Direction, hit.Normal).Normalize()
	reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Attenuation: m.Albedo,
		Specular:    core.NewRayAtTime(hit.Point, reflected, rayIn.Time),
	}, true
}
